package blog

import "github.com/pkg/errors"

var (
	ErrNotFound         = errors.New("post not found")
	ErrInvalidID        = errors.New("invalid post id")
	ErrStoreUnavailable = errors.New("content store unavailable")
)

// StoreError wraps a backend failure. It matches ErrStoreUnavailable.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + ErrStoreUnavailable.Error() + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
