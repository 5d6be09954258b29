package blog

import (
	"context"

	"github.com/pkg/errors"
)

// Repository is the application-facing view of a Store. It rejects
// malformed ids before they reach the store and reports every other
// backend failure as ErrStoreUnavailable.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) ListAll(ctx context.Context) ([]Post, error) {
	posts, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, unavailable("list posts", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

func (r *Repository) Create(ctx context.Context, title, content string) (Post, error) {
	post := Post{Title: title, Content: content}
	id, err := r.store.Insert(ctx, post)
	if err != nil {
		return Post{}, unavailable("create post", err)
	}
	if id == "" {
		return Post{}, unavailable("create post", errors.New("store returned an empty id"))
	}
	post.ID = id
	return post, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (Post, error) {
	if !ValidID(id) {
		return Post{}, errors.Wrapf(ErrInvalidID, "%q", id)
	}
	post, err := r.store.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return Post{}, errors.Wrapf(ErrNotFound, "id %s", id)
		case errors.Is(err, ErrInvalidID):
			return Post{}, errors.Wrapf(ErrInvalidID, "%q", id)
		}
		return Post{}, unavailable("get post "+id, err)
	}
	return post, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
