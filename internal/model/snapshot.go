package model

// Statistics tracks daily completions and the completion streak
type Statistics struct {
	CompletedToday    int     `json:"completedToday"`
	CompletedTodayIDs []int64 `json:"completedTodayIds"`
	Streak            int     `json:"streak"`
	LastCompleted     string  `json:"lastCompleted,omitempty"` // YYYY-MM-DD
}

// Clone returns a copy that does not share the id slice
func (s Statistics) Clone() Statistics {
	c := s
	c.CompletedTodayIDs = append([]int64{}, s.CompletedTodayIDs...)
	return c
}

// Snapshot is the whole persisted application state
type Snapshot struct {
	Lists      []List         `json:"lists"`
	Todos      []Todo         `json:"todos"`
	ActiveList int64          `json:"activeList"`
	UndoStack  []HistoryEntry `json:"undoStack"`
	RedoStack  []HistoryEntry `json:"redoStack"`
	Settings   Settings       `json:"settings"`
	Statistics Statistics     `json:"statistics"`
}

// NewSnapshot returns the state of a first run
func NewSnapshot() Snapshot {
	return Snapshot{
		Lists:      []List{DefaultList()},
		Todos:      []Todo{},
		ActiveList: DefaultListID,
		UndoStack:  []HistoryEntry{},
		RedoStack:  []HistoryEntry{},
		Settings:   DefaultSettings(),
		Statistics: Statistics{CompletedTodayIDs: []int64{}},
	}
}

// Normalize repairs a decoded snapshot: nil collections become empty, a
// missing list set gets the default list, and the active list must exist.
func (s *Snapshot) Normalize() {
	if len(s.Lists) == 0 {
		s.Lists = []List{DefaultList()}
	}
	if s.Todos == nil {
		s.Todos = []Todo{}
	}
	if s.UndoStack == nil {
		s.UndoStack = []HistoryEntry{}
	}
	if s.RedoStack == nil {
		s.RedoStack = []HistoryEntry{}
	}
	if s.Statistics.CompletedTodayIDs == nil {
		s.Statistics.CompletedTodayIDs = []int64{}
	}

	found := false
	for _, l := range s.Lists {
		if l.ID == s.ActiveList {
			found = true
			break
		}
	}
	if !found {
		s.ActiveList = s.Lists[0].ID
		for _, l := range s.Lists {
			if l.IsDefault {
				s.ActiveList = l.ID
				break
			}
		}
	}

	// Keep the completed/completedAt pair consistent for data written by
	// older versions.
	for i := range s.Todos {
		t := &s.Todos[i]
		if !t.Completed {
			t.CompletedAt = nil
		} else if t.CompletedAt == nil {
			at := t.CreatedAt
			t.CompletedAt = &at
		}
	}
}
