package blog

import "context"

// Store is the content store backing the repository. Implementations assign
// ids on Insert and return ErrNotFound from FindByID when no post matches.
type Store interface {
	Insert(ctx context.Context, post Post) (string, error)
	FindAll(ctx context.Context) ([]Post, error)
	FindByID(ctx context.Context, id string) (Post, error)
	Ping(ctx context.Context) error
	Close() error
}
