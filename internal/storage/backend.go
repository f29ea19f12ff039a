package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when no blob is stored under a key.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a key/value store holding opaque blobs.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// quarantiner is implemented by backends that can set a corrupt blob aside
// instead of deleting it. It returns where the blob was moved.
type quarantiner interface {
	Quarantine(ctx context.Context, key string) (string, error)
}
