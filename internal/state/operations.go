package state

import (
	"context"
	"time"

	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/model"
)

// AddList creates a new list with a fresh id
func (s *Store) AddList(ctx context.Context, in model.NewList) (model.List, error) {
	in, err := in.Normalize()
	if err != nil {
		return model.List{}, err
	}
	if in.IsDefault {
		for _, l := range s.lists {
			if l.IsDefault {
				return model.List{}, model.ErrDefaultExists
			}
		}
	}

	l := model.List{
		ID:         s.nextID(),
		Name:       in.Name,
		Icon:       in.Icon,
		IsDefault:  in.IsDefault,
		IsFavorite: in.IsFavorite,
	}
	s.lists = append(s.lists, l)
	return l, s.commit(ctx, "addList", logger.F("id", l.ID))
}

// SetActiveList selects the list views show. Unknown ids are ignored.
func (s *Store) SetActiveList(ctx context.Context, id int64) (bool, error) {
	if s.listIndex(id) < 0 {
		s.noop("setActiveList", id)
		return false, nil
	}
	if s.activeList == id {
		return true, nil
	}
	s.activeList = id
	return true, s.commit(ctx, "setActiveList", logger.F("id", id))
}

// ToggleFavorite flips the favorite flag of a list
func (s *Store) ToggleFavorite(ctx context.Context, id int64) (model.List, bool, error) {
	i := s.listIndex(id)
	if i < 0 {
		s.noop("toggleFavorite", id)
		return model.List{}, false, nil
	}
	s.lists[i].IsFavorite = !s.lists[i].IsFavorite
	return s.lists[i], true, s.commit(ctx, "toggleFavorite", logger.F("id", id))
}

// AddTodo creates an open todo and records it in the undo log
func (s *Store) AddTodo(ctx context.Context, in model.NewTodo) (model.Todo, error) {
	in, err := in.Normalize()
	if err != nil {
		return model.Todo{}, err
	}
	if s.listIndex(in.ListID) < 0 {
		return model.Todo{}, model.ErrListNotFound
	}

	t := model.Todo{
		ID:        s.nextID(),
		Text:      in.Text,
		ListID:    in.ListID,
		Priority:  in.Priority,
		CreatedAt: s.now(),
		Notes:     in.Notes,
	}
	if in.DueDate != nil {
		due := *in.DueDate
		t.DueDate = &due
	}

	s.todos = append(s.todos, t)
	s.history.Record(model.HistoryEntry{Action: model.ActionAdd, Todo: t})
	return t.Clone(), s.commit(ctx, "addTodo", logger.F("id", t.ID))
}

// ToggleTodo flips a todo between open and completed and updates the
// statistics. Unknown ids are ignored.
func (s *Store) ToggleTodo(ctx context.Context, id int64) (model.Todo, bool, error) {
	i := s.todoIndex(id)
	if i < 0 {
		s.noop("toggleTodo", id)
		return model.Todo{}, false, nil
	}

	now := s.now()
	t := &s.todos[i]
	if !t.Completed {
		t.Completed = true
		t.CompletedAt = &now
		s.stats = Complete(s.stats, id, now)
	} else {
		t.Completed = false
		t.CompletedAt = nil
		s.stats = Reopen(s.stats, now)
	}
	return t.Clone(), true, s.commit(ctx, "toggleTodo",
		logger.F("id", id), logger.F("completed", t.Completed))
}

// UpdateTodo merges patch into a todo. Updates are not recorded in the undo
// log. Unknown ids are ignored.
func (s *Store) UpdateTodo(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, bool, error) {
	if err := patch.Validate(); err != nil {
		return model.Todo{}, false, err
	}
	if patch.ListID != nil && s.listIndex(*patch.ListID) < 0 {
		return model.Todo{}, false, model.ErrListNotFound
	}

	i := s.todoIndex(id)
	if i < 0 {
		s.noop("updateTodo", id)
		return model.Todo{}, false, nil
	}
	if patch.IsEmpty() {
		return s.todos[i].Clone(), true, nil
	}

	patch.Apply(&s.todos[i])
	return s.todos[i].Clone(), true, s.commit(ctx, "updateTodo", logger.F("id", id))
}

// TrackTime adds d, rounded to whole seconds, to a todo's time spent
func (s *Store) TrackTime(ctx context.Context, id int64, d time.Duration) (model.Todo, bool, error) {
	secs := int64(d.Round(time.Second) / time.Second)
	if secs < 0 {
		return model.Todo{}, false, model.ErrNegativeTime
	}

	i := s.todoIndex(id)
	if i < 0 {
		s.noop("trackTime", id)
		return model.Todo{}, false, nil
	}
	if secs == 0 {
		return s.todos[i].Clone(), true, nil
	}

	s.todos[i].TimeSpent += secs
	return s.todos[i].Clone(), true, s.commit(ctx, "trackTime",
		logger.F("id", id), logger.F("seconds", secs))
}

// DeleteTodo removes a todo, keeping a full copy in the undo log. Unknown ids
// leave both the todos and the log untouched.
func (s *Store) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	i := s.todoIndex(id)
	if i < 0 {
		s.noop("deleteTodo", id)
		return false, nil
	}

	t := s.todos[i]
	s.removeTodo(id)
	s.history.Record(model.HistoryEntry{Action: model.ActionDelete, Todo: t})
	return true, s.commit(ctx, "deleteTodo", logger.F("id", id))
}

// Undo reverts the most recent add or delete. A deleted todo comes back at
// the end of the collection.
func (s *Store) Undo(ctx context.Context) (model.HistoryEntry, bool, error) {
	e, ok := s.history.Undo()
	if !ok {
		return e, false, nil
	}

	switch e.Action {
	case model.ActionAdd:
		s.removeTodo(e.Todo.ID)
	case model.ActionDelete:
		s.insertTodo(e.Todo)
	default:
		s.log.Warn("Unknown history action", logger.F("action", e.Action))
	}
	return e, true, s.commit(ctx, "undo",
		logger.F("action", e.Action), logger.F("id", e.Todo.ID))
}

// Redo replays the most recently undone add or delete
func (s *Store) Redo(ctx context.Context) (model.HistoryEntry, bool, error) {
	e, ok := s.history.Redo()
	if !ok {
		return e, false, nil
	}

	switch e.Action {
	case model.ActionAdd:
		s.insertTodo(e.Todo)
	case model.ActionDelete:
		s.removeTodo(e.Todo.ID)
	default:
		s.log.Warn("Unknown history action", logger.F("action", e.Action))
	}
	return e, true, s.commit(ctx, "redo",
		logger.F("action", e.Action), logger.F("id", e.Todo.ID))
}

// Reorder moves a todo to index within the whole collection and reassigns
// every priority by position: the first third high, the next medium, the
// rest low. Like the drag-and-drop it mirrors, it bypasses the undo log.
func (s *Store) Reorder(ctx context.Context, id int64, index int) (bool, error) {
	from := s.todoIndex(id)
	if from < 0 {
		s.noop("reorder", id)
		return false, nil
	}

	n := len(s.todos)
	index = min(max(index, 0), n-1)

	t := s.todos[from]
	rest := append(s.todos[:from:from], s.todos[from+1:]...)
	reordered := make([]model.Todo, 0, n)
	reordered = append(reordered, rest[:index]...)
	reordered = append(reordered, t)
	reordered = append(reordered, rest[index:]...)

	for i := range reordered {
		switch {
		case 3*i < n:
			reordered[i].Priority = model.PriorityHigh
		case 3*i < 2*n:
			reordered[i].Priority = model.PriorityMedium
		default:
			reordered[i].Priority = model.PriorityLow
		}
	}
	s.todos = reordered
	return true, s.commit(ctx, "reorder", logger.F("id", id), logger.F("index", index))
}

// UpdateSettings merges patch into the settings
func (s *Store) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	s.settings = patch.Apply(s.settings)
	return s.settings, s.commit(ctx, "updateSettings")
}

// Reset returns lists, todos, the active list, the undo log and statistics to
// their first-run values. Settings are kept.
func (s *Store) Reset(ctx context.Context) error {
	fresh := model.NewSnapshot()
	s.lists = fresh.Lists
	s.todos = nil
	s.activeList = fresh.ActiveList
	s.history.Clear()
	s.stats = fresh.Statistics
	return s.commit(ctx, "reset")
}
