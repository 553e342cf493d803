package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/state"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T, opts Options) (Model, *state.Store, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)}
	store := state.New(model.NewSnapshot(), state.Options{Now: clock.Now})
	m := NewModel(store, opts)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, store, clock
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

// press sends each key in turn. "enter", "esc" and "tab" are special keys,
// anything else is typed as runes.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = send(t, m, msg)
	}
	return m
}

func addTask(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, "a", text, "enter")
}

func visibleTexts(m Model) []string {
	var out []string
	for _, t := range m.tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestAddTask(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})

	m = addTask(t, m, "Buy milk")
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
	todos := store.Todos()
	if len(todos) != 1 || todos[0].Text != "Buy milk" || todos[0].ListID != model.DefaultListID {
		t.Fatalf("todos = %+v", todos)
	}
	if m.message != "Added: Buy milk" {
		t.Errorf("message = %q", m.message)
	}

	// Escape and empty input add nothing
	m = press(t, m, "a", "Nope", "esc")
	m = press(t, m, "a", "enter")
	if len(store.Todos()) != 1 {
		t.Errorf("todos = %d, want 1", len(store.Todos()))
	}
}

func TestToggleKeepsTaskInPlaceUntilDelayPasses(t *testing.T) {
	m, store, clock := newTestModel(t, Options{})
	m = addTask(t, m, "First")
	m = addTask(t, m, "Second")
	m = press(t, m, "k") // cursor on First

	m = press(t, m, "x")
	first, _ := store.Todo(m.tasks[0].ID)
	if !first.Completed {
		t.Fatal("First should be completed")
	}
	if got := visibleTexts(m); got[0] != "First" || !m.tasks[0].Completed {
		t.Errorf("just-completed task should stay on top, got %v", got)
	}
	if store.Today().CompletedToday != 1 {
		t.Errorf("completedToday = %d", store.Today().CompletedToday)
	}

	clock.Advance(11 * time.Second)
	m = send(t, m, tickMsg(clock.now))
	if got := visibleTexts(m); got[0] != "Second" || got[1] != "First" {
		t.Errorf("after delay = %v, want [Second First]", got)
	}
}

func TestDeleteUndoRedo(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	m = addTask(t, m, "Call mom")

	m = press(t, m, "d")
	if len(store.Todos()) != 0 {
		t.Fatalf("todo not deleted")
	}
	m = press(t, m, "u")
	if len(store.Todos()) != 1 || len(m.tasks) != 1 {
		t.Fatalf("undo did not restore the todo")
	}
	m = press(t, m, "r")
	if len(store.Todos()) != 0 {
		t.Fatalf("redo did not delete again")
	}
	m = press(t, m, "r")
	if m.message != "Nothing to redo" {
		t.Errorf("message = %q", m.message)
	}
}

func TestDeleteAsksWhenConfigured(t *testing.T) {
	m, store, _ := newTestModel(t, Options{ConfirmDelete: true})
	m = addTask(t, m, "Keep me")

	m = press(t, m, "d")
	if m.mode != ModeConfirmDelete {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	if !strings.Contains(m.View(), "Delete task?") {
		t.Error("confirm modal not rendered")
	}
	m = press(t, m, "n")
	if len(store.Todos()) != 1 || m.message != "Cancelled" {
		t.Fatalf("cancel deleted the todo")
	}

	m = press(t, m, "d", "y")
	if len(store.Todos()) != 0 {
		t.Fatal("confirmed delete did not delete")
	}
}

func TestPriorityKeys(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	m = addTask(t, m, "Task")

	m = press(t, m, "1")
	got, _ := store.Todo(m.tasks[0].ID)
	if got.Priority != model.PriorityHigh {
		t.Errorf("priority = %s, want high", got.Priority)
	}
	m = press(t, m, "3")
	got, _ = store.Todo(m.tasks[0].ID)
	if got.Priority != model.PriorityLow {
		t.Errorf("priority = %s, want low", got.Priority)
	}
}

func TestEditTask(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	m = addTask(t, m, "Draft")

	m = press(t, m, "e", " v2", "enter")
	got, _ := store.Todo(m.tasks[0].ID)
	if got.Text != "Draft v2" {
		t.Errorf("text = %q, want %q", got.Text, "Draft v2")
	}
	if len(store.UndoStack()) != 1 {
		t.Errorf("edits must not be undoable, undo stack = %d", len(store.UndoStack()))
	}
}

func TestTimerTracksElapsedTime(t *testing.T) {
	m, store, clock := newTestModel(t, Options{})
	m = addTask(t, m, "Focus")
	id := m.tasks[0].ID

	m = press(t, m, "t")
	if m.timerID != id {
		t.Fatalf("timer not started")
	}
	clock.Advance(90 * time.Second)
	if !strings.Contains(m.View(), "01:30") {
		t.Error("running timer not shown")
	}
	m = press(t, m, "t")
	got, _ := store.Todo(id)
	if got.TimeSpent != 90 || m.timerID != 0 {
		t.Errorf("timeSpent = %d, timerID = %d", got.TimeSpent, m.timerID)
	}

	// Quitting books a running timer
	m = press(t, m, "t")
	clock.Advance(30 * time.Second)
	press(t, m, "q")
	got, _ = store.Todo(id)
	if got.TimeSpent != 120 {
		t.Errorf("timeSpent after quit = %d, want 120", got.TimeSpent)
	}
}

func TestMoveReranksByPosition(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	m = addTask(t, m, "A")
	m = addTask(t, m, "B")
	m = addTask(t, m, "C")

	m = press(t, m, "K")
	want := []string{"A", "C", "B"}
	got := visibleTexts(m)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if c := m.currentTask(); c == nil || c.Text != "C" || c.Priority != model.PriorityMedium {
		t.Errorf("cursor task = %+v", c)
	}
	if len(store.UndoStack()) != 3 {
		t.Errorf("moves must bypass the undo log")
	}
}

func TestShowCompletedToggle(t *testing.T) {
	m, store, clock := newTestModel(t, Options{})
	m = addTask(t, m, "Done soon")
	m = press(t, m, "x")
	clock.Advance(time.Minute)

	m = press(t, m, "c")
	if store.Settings().ShowCompleted {
		t.Fatal("showCompleted should be off")
	}
	if len(m.tasks) != 0 {
		t.Errorf("completed task still visible: %v", visibleTexts(m))
	}
	m = press(t, m, "c")
	if len(m.tasks) != 1 {
		t.Errorf("completed task hidden after toggling back")
	}
}

func TestSpaces(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})

	m = press(t, m, "p", "Work", "enter")
	if len(store.Lists()) != 2 {
		t.Fatalf("lists = %d", len(store.Lists()))
	}
	work := store.Lists()[1]
	if store.ActiveList() != work.ID || m.listCursor != 1 {
		t.Fatalf("new space not active")
	}
	m = addTask(t, m, "Ship it")

	m = press(t, m, "h", "k")
	if store.ActiveList() != model.DefaultListID {
		t.Errorf("active = %d, want default", store.ActiveList())
	}
	if len(m.tasks) != 0 {
		t.Errorf("default space shows %v", visibleTexts(m))
	}

	m = press(t, m, "f")
	if l, _ := store.List(model.DefaultListID); !l.IsFavorite {
		t.Error("favorite not toggled")
	}
}

func TestSearch(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m = addTask(t, m, "Buy milk")
	m = addTask(t, m, "Write report")

	m = press(t, m, "/", "MIL")
	if got := visibleTexts(m); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("filtered = %v", got)
	}
	m = press(t, m, "enter")
	if m.mode != ModeNormal || m.filterText != "MIL" {
		t.Errorf("filter not kept")
	}
	m = press(t, m, "esc")
	if len(m.tasks) != 2 {
		t.Errorf("filter not cleared: %v", visibleTexts(m))
	}
}

func TestFirstVisitOpensHelp(t *testing.T) {
	m, _, _ := newTestModel(t, Options{FirstVisit: true})
	if m.mode != ModeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	if !strings.Contains(m.View(), "Press any key to close") {
		t.Error("help not rendered")
	}
	m = press(t, m, "j")
	if m.mode != ModeNormal {
		t.Errorf("any key should close help")
	}
}

func TestViewRendersStatsAndStreak(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m = addTask(t, m, "Stretch")
	m = press(t, m, "x")

	out := m.View()
	if !strings.Contains(out, "SpaceTask") || !strings.Contains(out, "🔥 1") {
		t.Errorf("header missing:\n%s", out)
	}

	m = press(t, m, "s")
	out = m.View()
	if !strings.Contains(out, "Statistics") || !strings.Contains(out, "100% (1/1)") {
		t.Errorf("stats overlay missing:\n%s", out)
	}
}
