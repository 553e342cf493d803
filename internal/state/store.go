package state

import (
	"context"
	"fmt"
	"time"

	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/model"
)

// Persister receives the whole snapshot after every change
type Persister interface {
	Save(ctx context.Context, snap model.Snapshot) error
}

// Backend is a Persister that can also produce the stored snapshot
type Backend interface {
	Persister
	Load(ctx context.Context) (model.Snapshot, error)
}

// Options configures a Store
type Options struct {
	Persister    Persister        // nil keeps state in memory only
	Now          func() time.Time // clock, defaults to time.Now
	Logger       *logger.Logger   // nil falls back to the global logger
	HistoryLimit int              // max undo entries, 0 = unbounded
}

// Store is the single owner of lists, todos, the active list, the undo log,
// settings and statistics. Every change goes through one of its methods and
// is persisted before the method returns. A Store is not safe for concurrent
// use.
type Store struct {
	lists      []model.List
	todos      []model.Todo
	activeList int64
	history    *History
	settings   model.Settings
	stats      model.Statistics

	persister Persister
	now       func() time.Time
	log       *logger.Logger
	lastID    int64
}

// New wraps an existing snapshot
func New(snap model.Snapshot, opts Options) *Store {
	snap.Normalize()

	s := &Store{
		activeList: snap.ActiveList,
		history:    NewHistory(snap.UndoStack, snap.RedoStack, opts.HistoryLimit),
		settings:   snap.Settings,
		stats:      snap.Statistics.Clone(),
		persister:  opts.Persister,
		now:        opts.Now,
		log:        opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = logger.Default()
	}

	s.lists = append([]model.List{}, snap.Lists...)
	for _, t := range snap.Todos {
		s.todos = append(s.todos, t.Clone())
	}

	for _, l := range s.lists {
		s.lastID = max(s.lastID, l.ID)
	}
	for _, t := range s.todos {
		s.lastID = max(s.lastID, t.ID)
	}
	for _, e := range snap.UndoStack {
		s.lastID = max(s.lastID, e.Todo.ID)
	}
	for _, e := range snap.RedoStack {
		s.lastID = max(s.lastID, e.Todo.ID)
	}
	return s
}

// Open loads the snapshot from b and persists every later change back to it
func Open(ctx context.Context, b Backend, opts Options) (*Store, error) {
	snap, err := b.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	opts.Persister = b
	return New(snap, opts), nil
}

// nextID returns a creation-time based id that is unique within the store
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// commit persists the current snapshot
func (s *Store) commit(ctx context.Context, op string, fields ...logger.Field) error {
	s.log.Debug("state changed", append([]logger.Field{logger.F("op", op)}, fields...)...)
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, s.Snapshot()); err != nil {
		s.log.Error("Failed to persist state", logger.F("op", op), logger.F("error", err))
		return fmt.Errorf("failed to save after %s: %w", op, err)
	}
	return nil
}

func (s *Store) noop(op string, id int64) {
	s.log.Debug("no-op", logger.F("op", op), logger.F("id", id))
}

// Read access. Everything returned is a copy.

// Snapshot returns the full state in its persisted shape
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		Lists:      s.Lists(),
		Todos:      s.Todos(),
		ActiveList: s.activeList,
		UndoStack:  s.history.UndoStack(),
		RedoStack:  s.history.RedoStack(),
		Settings:   s.settings,
		Statistics: s.stats.Clone(),
	}
}

// Lists returns every list in creation order
func (s *Store) Lists() []model.List {
	return append([]model.List{}, s.lists...)
}

// Todos returns every todo in collection order
func (s *Store) Todos() []model.Todo {
	out := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t.Clone())
	}
	return out
}

// ActiveList returns the id of the selected list
func (s *Store) ActiveList() int64 { return s.activeList }

// Settings returns the display settings
func (s *Store) Settings() model.Settings { return s.settings }

// Statistics returns the counters as stored. Use Today for display values.
func (s *Store) Statistics() model.Statistics { return s.stats.Clone() }

// Today returns the statistics as of now: daily counters rolled over and an
// expired streak reported as zero.
func (s *Store) Today() model.Statistics {
	now := s.now()
	st := Rollover(s.stats, now)
	st.Streak = ActiveStreak(s.stats, now)
	return st
}

// UndoStack returns the undo stack, oldest first
func (s *Store) UndoStack() []model.HistoryEntry { return s.history.UndoStack() }

// RedoStack returns the redo stack, oldest first
func (s *Store) RedoStack() []model.HistoryEntry { return s.history.RedoStack() }

// CanUndo reports whether Undo would change anything
func (s *Store) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would change anything
func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// Now returns the store's clock reading
func (s *Store) Now() time.Time { return s.now() }

// Todo looks up a todo by id
func (s *Store) Todo(id int64) (model.Todo, bool) {
	if i := s.todoIndex(id); i >= 0 {
		return s.todos[i].Clone(), true
	}
	return model.Todo{}, false
}

// List looks up a list by id
func (s *Store) List(id int64) (model.List, bool) {
	if i := s.listIndex(id); i >= 0 {
		return s.lists[i], true
	}
	return model.List{}, false
}

func (s *Store) todoIndex(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) listIndex(id int64) int {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeTodo(id int64) bool {
	i := s.todoIndex(id)
	if i < 0 {
		return false
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return true
}

// insertTodo appends t unless a todo with its id is already present
func (s *Store) insertTodo(t model.Todo) bool {
	if s.todoIndex(t.ID) >= 0 {
		return false
	}
	s.todos = append(s.todos, t.Clone())
	return true
}
