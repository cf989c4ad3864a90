// Package workspace owns the canonical task and project collections. Every
// mutation is validated, applied to a copy, persisted in full, committed,
// and then announced to subscribers.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/models"
	"taskflow/internal/store"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Snapshot is a read-only copy of the collections handed to listeners.
type Snapshot struct {
	Tasks    []models.Task
	Projects []models.Project
}

// Listener is called after every successful mutation, once the new state
// has been persisted. Listeners run while the workspace is locked and must
// not call back into it.
type Listener func(Snapshot)

// Config holds workspace dependencies. Zero fields get defaults.
type Config struct {
	Now    func() time.Time
	NewID  func() string
	Logger *log.Logger
}

// Workspace holds the task and project collections of one user.
type Workspace struct {
	mu        sync.Mutex
	store     store.Store
	tasks     []models.Task
	projects  []models.Project
	darkMode  bool
	listeners []Listener

	// issued holds every id handed out or loaded since Open, including ids
	// of deleted tasks and projects.
	issued map[string]struct{}

	now    func() time.Time
	newID  func() string
	logger *log.Logger
}

// Open loads the workspace from s. Missing records start empty (projects
// start with the seed projects); corrupt records are logged and replaced
// the same way rather than failing.
func Open(ctx context.Context, s store.Store, cfg *Config) (*Workspace, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	w := &Workspace{
		store:  s,
		now:    cfg.Now,
		newID:  cfg.NewID,
		logger: cfg.Logger,
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.newID == nil {
		w.newID = func() string { return uuid.New().String() }
	}
	if w.logger == nil {
		w.logger = log.Default()
	}

	if err := w.load(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workspace) load(ctx context.Context) error {
	var tasks []models.Task
	found, err := w.loadRecord(ctx, store.KeyTasks, &tasks)
	if err != nil {
		return err
	}
	if !found || tasks == nil {
		tasks = []models.Task{}
	}
	for i := range tasks {
		tasks[i].Normalize()
	}

	var projects []models.Project
	found, err = w.loadRecord(ctx, store.KeyProjects, &projects)
	if err != nil {
		return err
	}
	if !found || projects == nil {
		projects = models.SeedProjects()
	}

	var darkMode bool
	found, err = w.loadRecord(ctx, store.KeyDarkMode, &darkMode)
	if err != nil {
		return err
	}

	w.tasks = tasks
	w.projects = projects
	w.darkMode = found && darkMode
	w.issued = make(map[string]struct{}, len(tasks)+len(projects))
	for _, t := range tasks {
		w.issued[t.ID] = struct{}{}
	}
	for _, p := range projects {
		w.issued[p.ID] = struct{}{}
	}
	return nil
}

// issueID draws ids until one has never been issued by this workspace and
// records it. Callers hold w.mu. An id reserved by a mutation that later
// fails to persist stays reserved.
func (w *Workspace) issueID() string {
	for {
		id := w.newID()
		if id == "" {
			continue
		}
		if _, taken := w.issued[id]; taken {
			continue
		}
		w.issued[id] = struct{}{}
		return id
	}
}

// loadRecord decodes the record stored under key into dst. It reports false
// when the record is absent or cannot be decoded.
func (w *Workspace) loadRecord(ctx context.Context, key string, dst any) (bool, error) {
	data, err := w.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		w.logger.Printf("stored %s record is corrupt, starting from defaults: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Subscribe registers a listener for post-mutation snapshots.
func (w *Workspace) Subscribe(l Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, l)
}

// Snapshot returns a copy of the current collections.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workspace) snapshotLocked() Snapshot {
	return Snapshot{
		Tasks:    cloneTasks(w.tasks),
		Projects: append([]models.Project{}, w.projects...),
	}
}

func (w *Workspace) notifyLocked() {
	if len(w.listeners) == 0 {
		return
	}
	snap := w.snapshotLocked()
	for _, l := range w.listeners {
		l(snap)
	}
}

// mutateTasks applies fn to a copy of the task list, persists the result,
// and commits it. If fn or persistence fails the workspace is unchanged.
func (w *Workspace) mutateTasks(ctx context.Context, fn func(tasks []models.Task) ([]models.Task, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := fn(cloneTasks(w.tasks))
	if err != nil {
		return err
	}
	if err := w.putRecord(ctx, store.KeyTasks, next); err != nil {
		return err
	}

	w.tasks = next
	w.notifyLocked()
	return nil
}

func (w *Workspace) mutateProjects(ctx context.Context, fn func(projects []models.Project) ([]models.Project, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := fn(append([]models.Project{}, w.projects...))
	if err != nil {
		return err
	}
	if err := w.putRecord(ctx, store.KeyProjects, next); err != nil {
		return err
	}

	w.projects = next
	w.notifyLocked()
	return nil
}

func (w *Workspace) putRecord(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := w.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// DarkMode returns the stored UI theme preference.
func (w *Workspace) DarkMode() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.darkMode
}

// SetDarkMode persists the UI theme preference.
func (w *Workspace) SetDarkMode(ctx context.Context, enabled bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.putRecord(ctx, store.KeyDarkMode, enabled); err != nil {
		return err
	}
	w.darkMode = enabled
	return nil
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
