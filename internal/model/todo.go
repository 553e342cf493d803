package model

import (
	"strings"
	"time"
)

// Todo represents a single task inside a list
type Todo struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	ListID      int64      `json:"listId"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	TimeSpent   int64      `json:"timeSpent"` // seconds
}

// Clone returns a deep copy so callers never share pointers with the store.
func (t Todo) Clone() Todo {
	c := t
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		c.CompletedAt = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		c.DueDate = &v
	}
	return c
}

// IsDue returns true if the todo is due today or overdue
func (t *Todo) IsDue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(startOfDay(now).AddDate(0, 0, 1))
}

// IsOverdue returns true if the todo is past its due date
func (t *Todo) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(startOfDay(now))
}

// Matches reports whether query occurs in the text or notes, ignoring case.
// An empty query matches everything.
func (t *Todo) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Text), q) ||
		strings.Contains(strings.ToLower(t.Notes), q)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewTodo is the input accepted by addTodo
type NewTodo struct {
	Text     string
	ListID   int64
	Priority Priority
	DueDate  *time.Time
	Notes    string
}

// Normalize checks the record and fills in defaults. List existence is
// checked by the state container, which owns the lists.
func (n NewTodo) Normalize() (NewTodo, error) {
	if strings.TrimSpace(n.Text) == "" {
		return n, ErrEmptyText
	}
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	if !n.Priority.Valid() {
		return n, ErrInvalidPriority
	}
	return n, nil
}

// TodoPatch holds the fields updateTodo merges into an existing todo.
// Nil fields are left untouched.
type TodoPatch struct {
	Text         *string
	ListID       *int64
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
	Notes        *string
	TimeSpent    *int64
}

// IsEmpty reports whether applying the patch would change nothing
func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.ListID == nil && p.Priority == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.Notes == nil && p.TimeSpent == nil
}

// Validate rejects values a todo may never hold
func (p TodoPatch) Validate() error {
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		return ErrEmptyText
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.TimeSpent != nil && *p.TimeSpent < 0 {
		return ErrNegativeTime
	}
	return nil
}

// Apply merges the patch into t
func (p TodoPatch) Apply(t *Todo) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.ListID != nil {
		t.ListID = *p.ListID
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearDueDate {
		t.DueDate = nil
	}
	if p.DueDate != nil {
		v := *p.DueDate
		t.DueDate = &v
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.TimeSpent != nil {
		t.TimeSpent = *p.TimeSpent
	}
}
