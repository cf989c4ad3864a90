package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	fileLockName   = ".store.lock"
	lockRetryDelay = 50 * time.Millisecond
)

// FileStore implements the Store interface with one JSON file per key in a
// directory. Writes hold an exclusive file lock and replace the file
// atomically. The mutex serializes callers in this process; the flock
// serializes processes.
type FileStore struct {
	mu  sync.Mutex
	dir string
	flk *flock.Flock
}

// NewFileStore creates a file store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{
		dir: dir,
		flk: flock.New(filepath.Join(dir, fileLockName)),
	}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.flk.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, fmt.Errorf("failed to acquire read lock for %s: %w", s.dir, err)
	}
	defer s.flk.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Put stores value under key, replacing any previous value.
func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.flk.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("failed to acquire write lock for %s: %w", s.dir, err)
	}
	defer s.flk.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Close releases the store's lock if it is still held.
func (s *FileStore) Close() error {
	return s.flk.Close()
}
