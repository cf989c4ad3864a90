package store

import (
	"context"
	"errors"
)

// Keys of the records a workspace persists.
const (
	KeyTasks    = "tasks"
	KeyProjects = "projects"
	KeyDarkMode = "darkMode"
)

// ErrNotFound is returned by Get when no value is stored under a key.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for data persistence operations. Values are
// opaque blobs; the workspace owns their encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error

	// Lifecycle
	Close() error
}
