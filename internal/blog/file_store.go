package blog

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps every post in a single JSON file. Posts are listed in
// insertion order.
type FileStore struct {
	path  string
	mu    sync.RWMutex
	posts []Post
}

func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *FileStore) Insert(_ context.Context, post Post) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = NewID()
	s.posts = append(s.posts, post)
	if err := s.save(); err != nil {
		s.posts = s.posts[:len(s.posts)-1]
		return "", err
	}
	return post.ID, nil
}

func (s *FileStore) FindAll(_ context.Context) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// 返回副本，避免外部修改内部切片
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	return posts, nil
}

func (s *FileStore) FindByID(_ context.Context, id string) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return Post{}, ErrNotFound
}

func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "stat posts file")
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.posts = []Post{}
			return nil
		}
		return errors.Wrap(err, "read posts file")
	}
	if len(data) == 0 {
		s.posts = []Post{}
		return nil
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return errors.Wrapf(err, "decode %s", s.path)
	}
	s.posts = posts
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.posts, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode posts")
	}
	data = append(data, '\n')
	return atomicWriteFile(s.path, data, 0o644)
}
