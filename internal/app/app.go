// Package app wires the store, workspace and projections together for one
// data directory.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"taskflow/internal/config"
	"taskflow/internal/store"
	"taskflow/internal/views"
	"taskflow/internal/workspace"
)

// ErrLocked is returned when another process owns the data directory.
var ErrLocked = errors.New("another instance of taskflow is already running")

// App holds the application state and dependencies.
type App struct {
	Store     store.Store
	Workspace *workspace.Workspace
	Live      *views.Live
	DataDir   string
	lockFile  *flock.Flock
}

// Options control how the data directory is opened.
type Options struct {
	// ReadOnly skips the instance lock. Commands that only read use it so
	// they can run next to a server.
	ReadOnly bool
	// Workspace configures the workspace; nil uses defaults.
	Workspace *workspace.Config
}

// New opens the configured store and loads the workspace.
func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{DataDir: cfg.DataDir}

	if !opts.ReadOnly {
		if err := a.acquireLock(); err != nil {
			return nil, err
		}
	}

	s, err := openStore(cfg)
	if err != nil {
		a.releaseLock()
		return nil, err
	}
	a.Store = s

	ws, err := workspace.Open(ctx, s, opts.Workspace)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	a.Workspace = ws

	a.Live = views.NewLive(nil)
	snap := ws.Snapshot()
	a.Live.Refresh(snap.Tasks, snap.Projects)
	ws.Subscribe(func(snap workspace.Snapshot) {
		a.Live.Refresh(snap.Tasks, snap.Projects)
	})

	return a, nil
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		s, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return s, nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		s, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, nil
	}
}

// acquireLock acquires an exclusive file lock to prevent multiple instances.
func (a *App) acquireLock() error {
	a.lockFile = flock.New(filepath.Join(a.DataDir, "taskflow.lock"))

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	return nil
}

func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources.
func (a *App) Close() error {
	var err error
	if a.Store != nil {
		if cerr := a.Store.Close(); cerr != nil {
			err = fmt.Errorf("failed to close store: %w", cerr)
		}
	}
	a.releaseLock()
	return err
}
