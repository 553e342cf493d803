package model

import (
	"errors"
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		err  bool
	}{
		{"high", PriorityHigh, false},
		{"H", PriorityHigh, false},
		{" Medium ", PriorityMedium, false},
		{"l", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.err {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestPriorityRankOrdersHighFirst(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatal("expected high < medium < low")
	}
	if PriorityHigh.Title() != "High" {
		t.Errorf("Title() = %q", PriorityHigh.Title())
	}
}

func TestNewTodoNormalize(t *testing.T) {
	n, err := NewTodo{Text: "Buy milk", ListID: 1}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Priority != PriorityMedium {
		t.Errorf("default priority = %q, want medium", n.Priority)
	}

	if _, err := (NewTodo{Text: "   "}).Normalize(); !errors.Is(err, ErrEmptyText) {
		t.Errorf("blank text error = %v", err)
	}
	if _, err := (NewTodo{Text: "x", Priority: "urgent"}).Normalize(); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("bad priority error = %v", err)
	}
}

func TestNewListNormalize(t *testing.T) {
	n, err := NewList{Name: "  Work "}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Name != "Work" || n.Icon != DefaultIcon {
		t.Errorf("got %+v", n)
	}
	if _, err := (NewList{Name: ""}).Normalize(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name error = %v", err)
	}
}

func TestTodoPatch(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	todo := Todo{ID: 1, Text: "old", Priority: PriorityLow, Notes: "n"}

	text := "new"
	prio := PriorityHigh
	p := TodoPatch{Text: &text, Priority: &prio, DueDate: &due}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	p.Apply(&todo)
	if todo.Text != "new" || todo.Priority != PriorityHigh || todo.Notes != "n" {
		t.Errorf("patched todo = %+v", todo)
	}
	if todo.DueDate == nil || !todo.DueDate.Equal(due) {
		t.Errorf("due = %v", todo.DueDate)
	}

	TodoPatch{ClearDueDate: true}.Apply(&todo)
	if todo.DueDate != nil {
		t.Error("due date not cleared")
	}

	neg := int64(-1)
	if err := (TodoPatch{TimeSpent: &neg}).Validate(); !errors.Is(err, ErrNegativeTime) {
		t.Errorf("negative time error = %v", err)
	}
	if !(TodoPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
}

func TestTodoCloneDoesNotShare(t *testing.T) {
	at := time.Now()
	orig := Todo{ID: 1, Completed: true, CompletedAt: &at}
	c := orig.Clone()
	*c.CompletedAt = at.Add(time.Hour)
	if !orig.CompletedAt.Equal(at) {
		t.Fatal("clone shares CompletedAt")
	}
}

func TestTodoDueness(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tonight := time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC)
	nextWeek := now.AddDate(0, 0, 7)

	cases := []struct {
		due     *time.Time
		isDue   bool
		overdue bool
	}{
		{nil, false, false},
		{&yesterday, true, true},
		{&tonight, true, false},
		{&nextWeek, false, false},
	}
	for i, c := range cases {
		td := Todo{DueDate: c.due}
		if got := td.IsDue(now); got != c.isDue {
			t.Errorf("case %d IsDue = %v", i, got)
		}
		if got := td.IsOverdue(now); got != c.overdue {
			t.Errorf("case %d IsOverdue = %v", i, got)
		}
	}
}

func TestTodoMatches(t *testing.T) {
	td := Todo{Text: "Buy MILK", Notes: "from the corner shop"}
	for _, q := range []string{"", "milk", "Corner", "buy m"} {
		if !td.Matches(q) {
			t.Errorf("expected match for %q", q)
		}
	}
	if td.Matches("bread") {
		t.Error("unexpected match for bread")
	}
}

func TestParseSetting(t *testing.T) {
	p, err := ParseSetting("show-completed", "false")
	if err != nil {
		t.Fatalf("ParseSetting: %v", err)
	}
	s := p.Apply(DefaultSettings())
	if s.ShowCompleted {
		t.Error("showCompleted not applied")
	}
	if s.Theme != "light" {
		t.Error("untouched field changed")
	}

	if _, err := ParseSetting("fontSize", "12"); !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("unknown key error = %v", err)
	}
	if _, err := ParseSetting("showCompleted", "maybe"); err == nil {
		t.Error("expected bool parse error")
	}
}

func TestSnapshotNormalize(t *testing.T) {
	var s Snapshot
	s.ActiveList = 99
	s.Todos = []Todo{{ID: 5, Completed: true}, {ID: 6, Completed: false, CompletedAt: &time.Time{}}}
	s.Normalize()

	if len(s.Lists) != 1 || !s.Lists[0].IsDefault {
		t.Fatalf("lists = %+v", s.Lists)
	}
	if s.ActiveList != DefaultListID {
		t.Errorf("active list = %d", s.ActiveList)
	}
	if s.UndoStack == nil || s.RedoStack == nil || s.Statistics.CompletedTodayIDs == nil {
		t.Error("nil collections left after Normalize")
	}
	if s.Todos[0].CompletedAt == nil {
		t.Error("completed todo without CompletedAt")
	}
	if s.Todos[1].CompletedAt != nil {
		t.Error("open todo kept CompletedAt")
	}
}
