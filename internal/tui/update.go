package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/model"
)

// tickMsg is sent every second for time updates
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Check for delayed sorting
		needsRefresh := false
		now := m.store.Now()
		for id, doneTime := range m.recentlyDone {
			if now.Sub(doneTime) >= doneDelay {
				delete(m.recentlyDone, id)
				needsRefresh = true
			}
		}
		if needsRefresh {
			m.reload()
		}
		// Continue ticking for the clock and the timer
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle mode-specific input
		switch m.mode {
		case ModeAddTask, ModeAddList, ModeEditTask:
			return m.updateInput(msg)
		case ModeFilter:
			return m.updateFilter(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp, ModeStats:
			m.mode = ModeNormal
			return m, nil
		}

		// Normal mode key handling
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.stopTimer()
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneTaskList
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneSidebar

	case key.Matches(msg, keys.Right):
		m.pane = PaneTaskList

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case msg.String() == "G":
		m.handleGoBottom()

	case msg.String() == "1", msg.String() == "2", msg.String() == "3":
		m.handlePriority(msg.String())

	case key.Matches(msg, keys.Add):
		return m.startInput(ModeAddTask, "", "Enter task...")

	case key.Matches(msg, keys.NewList):
		return m.startInput(ModeAddList, "", "Enter space name...")

	case key.Matches(msg, keys.Edit):
		if t := m.currentTask(); t != nil && m.pane == PaneTaskList {
			return m.startInput(ModeEditTask, t.Text, "Edit task...")
		}

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		if m.pane == PaneSidebar {
			m.pane = PaneTaskList
		} else {
			m.handleToggleDone()
		}

	case key.Matches(msg, keys.Delete):
		m.handleDelete()

	case key.Matches(msg, keys.Undo):
		m.handleUndo()

	case key.Matches(msg, keys.Redo):
		m.handleRedo()

	case key.Matches(msg, keys.Timer):
		m.handleTimer()

	case key.Matches(msg, keys.MoveDown):
		m.handleMove(1)

	case key.Matches(msg, keys.MoveUp):
		m.handleMove(-1)

	case key.Matches(msg, keys.ShowCompleted):
		m.handleShowCompleted()

	case key.Matches(msg, keys.Favorite):
		m.handleFavorite()

	case key.Matches(msg, keys.Search):
		return m.startFilter()

	case key.Matches(msg, keys.Escape):
		if m.filterText != "" {
			m.filterText = ""
			m.reload()
			m.message = "Filter cleared"
		}

	case key.Matches(msg, keys.Stats):
		m.mode = ModeStats

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

// reload re-derives the view while keeping the cursor on the same task
func (m *Model) reload() {
	var id int64
	if t := m.currentTask(); t != nil {
		id = t.ID
	}
	m.loadData()
	if id != 0 {
		m.selectTask(id)
	}
}

// fail reports an error from the store in the status bar
func (m *Model) fail(op string, err error) {
	m.log.Error("TUI operation failed", logger.F("op", op), logger.F("error", err))
	m.message = fmt.Sprintf("Error: %v", err)
}

func (m *Model) handleUp() {
	if m.pane == PaneSidebar {
		if m.listCursor > 0 {
			m.listCursor--
			m.activateList()
		}
	} else {
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneSidebar {
		if m.listCursor < len(m.lists)-1 {
			m.listCursor++
			m.activateList()
		}
	} else {
		if m.taskCursor < len(m.tasks)-1 {
			m.taskCursor++
		}
	}
}

func (m *Model) handleGoBottom() {
	if m.pane == PaneSidebar {
		m.listCursor = len(m.lists) - 1
		m.activateList()
	} else {
		m.taskCursor = max(len(m.tasks)-1, 0)
	}
}

// activateList makes the space under the cursor the active one
func (m *Model) activateList() {
	l := m.currentList()
	if l == nil {
		return
	}
	if _, err := m.store.SetActiveList(context.Background(), l.ID); err != nil {
		m.fail("setActiveList", err)
	}
	m.taskCursor = 0
	m.loadData()
}

func (m *Model) handlePriority(k string) {
	task := m.currentTask()
	if m.pane != PaneTaskList || task == nil {
		return
	}

	priority := map[string]model.Priority{
		"1": model.PriorityHigh,
		"2": model.PriorityMedium,
		"3": model.PriorityLow,
	}[k]
	if _, _, err := m.store.UpdateTodo(context.Background(), task.ID, model.TodoPatch{Priority: &priority}); err != nil {
		m.fail("updateTodo", err)
		return
	}
	m.reload()
	m.message = fmt.Sprintf("Priority set to %s", priority)
}

func (m Model) startInput(mode Mode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.Focus()
	m.input.CursorEnd()
	return m, textinput.Blink
}

func (m *Model) handleToggleDone() {
	task := m.currentTask()
	if task == nil {
		return
	}

	t, ok, err := m.store.ToggleTodo(context.Background(), task.ID)
	if err != nil {
		m.fail("toggleTodo", err)
	}
	if !ok {
		return
	}

	if t.Completed {
		m.recentlyDone[t.ID] = m.store.Now()
		m.message = fmt.Sprintf("✓ Completed: %s  🔥 %d", t.Text, m.store.Today().Streak)
	} else {
		delete(m.recentlyDone, t.ID)
		m.message = fmt.Sprintf("○ Reopened: %s", t.Text)
	}
	m.reload()
}

func (m *Model) handleDelete() {
	task := m.currentTask()
	if m.pane != PaneTaskList || task == nil {
		return
	}
	if m.confirmDelete {
		m.mode = ModeConfirmDelete
		return
	}
	m.deleteCurrent()
}

func (m *Model) deleteCurrent() {
	task := m.currentTask()
	if task == nil {
		return
	}
	text, id := task.Text, task.ID
	if id == m.timerID {
		m.stopTimer()
	}
	if _, err := m.store.DeleteTodo(context.Background(), id); err != nil {
		m.fail("deleteTodo", err)
	}
	m.loadData()
	m.message = fmt.Sprintf("Deleted: %s (u to undo)", text)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if msg.String() == "y" || msg.String() == "Y" {
		m.deleteCurrent()
		return m, nil
	}
	m.message = "Cancelled"
	return m, nil
}

func (m *Model) handleUndo() {
	e, ok, err := m.store.Undo(context.Background())
	if err != nil {
		m.fail("undo", err)
	}
	if !ok {
		m.message = "Nothing to undo"
		return
	}
	m.reload()
	m.message = fmt.Sprintf("Undid %s: %s", e.Action, e.Todo.Text)
}

func (m *Model) handleRedo() {
	e, ok, err := m.store.Redo(context.Background())
	if err != nil {
		m.fail("redo", err)
	}
	if !ok {
		m.message = "Nothing to redo"
		return
	}
	m.reload()
	m.message = fmt.Sprintf("Redid %s: %s", e.Action, e.Todo.Text)
}

// handleTimer starts the timer on the current task, or stops a running one
// and books the elapsed time
func (m *Model) handleTimer() {
	if m.timerID != 0 {
		m.stopTimer()
		return
	}
	task := m.currentTask()
	if m.pane != PaneTaskList || task == nil {
		return
	}
	m.timerID = task.ID
	m.timerStart = m.store.Now()
	m.message = fmt.Sprintf("⏱ Timer started: %s", task.Text)
}

func (m *Model) stopTimer() {
	if m.timerID == 0 {
		return
	}
	id, d := m.timerID, m.elapsed()
	m.timerID = 0

	t, ok, err := m.store.TrackTime(context.Background(), id, d)
	if err != nil {
		m.fail("trackTime", err)
		return
	}
	if ok {
		m.message = fmt.Sprintf("⏱ Tracked %s on %s", clock(d), t.Text)
	}
	m.reload()
}

// handleMove swaps the current task with its visible neighbour. Priorities
// are then re-ranked by position across all tasks.
func (m *Model) handleMove(delta int) {
	task := m.currentTask()
	if m.pane != PaneTaskList || task == nil {
		return
	}
	n := m.taskCursor + delta
	if n < 0 || n >= len(m.tasks) {
		return
	}

	neighbour := m.tasks[n].ID
	index := -1
	for i, t := range m.store.Todos() {
		if t.ID == neighbour {
			index = i
		}
	}
	if index < 0 {
		return
	}

	id := task.ID
	if _, err := m.store.Reorder(context.Background(), id, index); err != nil {
		m.fail("reorder", err)
	}
	m.loadData()
	m.selectTask(id)
	if t, ok := m.store.Todo(id); ok {
		m.message = fmt.Sprintf("Moved: %s (%s)", t.Text, t.Priority)
	}
}

func (m *Model) handleShowCompleted() {
	show := !m.store.Settings().ShowCompleted
	if _, err := m.store.UpdateSettings(context.Background(), model.SettingsPatch{ShowCompleted: &show}); err != nil {
		m.fail("updateSettings", err)
	}
	m.reload()
	if show {
		m.message = "Showing completed tasks"
	} else {
		m.message = "Hiding completed tasks"
	}
}

func (m *Model) handleFavorite() {
	l := m.currentList()
	if l == nil {
		return
	}
	updated, _, err := m.store.ToggleFavorite(context.Background(), l.ID)
	if err != nil {
		m.fail("toggleFavorite", err)
	}
	m.loadData()
	if updated.IsFavorite {
		m.message = fmt.Sprintf("★ %s", updated.Name)
	} else {
		m.message = fmt.Sprintf("☆ %s", updated.Name)
	}
}

func (m Model) startFilter() (tea.Model, tea.Cmd) {
	m.mode = ModeFilter
	m.input.SetValue(m.filterText)
	m.input.Placeholder = "/"
	m.input.Focus()
	m.input.CursorEnd()
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		mode := m.mode
		m.mode = ModeNormal
		if value == "" {
			return m, nil
		}

		ctx := context.Background()
		switch mode {
		case ModeAddTask:
			t, err := m.store.AddTodo(ctx, model.NewTodo{Text: value, ListID: m.store.ActiveList()})
			if err != nil {
				m.fail("addTodo", err)
				break
			}
			m.loadData()
			m.selectTask(t.ID)
			m.message = fmt.Sprintf("Added: %s", t.Text)

		case ModeAddList:
			l, err := m.store.AddList(ctx, model.NewList{Name: value})
			if err != nil {
				m.fail("addList", err)
				break
			}
			if _, err := m.store.SetActiveList(ctx, l.ID); err != nil {
				m.fail("setActiveList", err)
			}
			m.loadData()
			for i := range m.lists {
				if m.lists[i].ID == l.ID {
					m.listCursor = i
				}
			}
			m.taskCursor = 0
			m.message = fmt.Sprintf("Created space: %s", l.Label())

		case ModeEditTask:
			task := m.currentTask()
			if task == nil {
				break
			}
			t, _, err := m.store.UpdateTodo(ctx, task.ID, model.TodoPatch{Text: &value})
			if err != nil {
				m.fail("updateTodo", err)
				break
			}
			m.reload()
			m.message = fmt.Sprintf("Updated: %s", t.Text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.filterText = ""
		m.loadData()
		return m, nil

	case key.Matches(msg, keys.Tab):
		// Toggle between current space and all spaces
		m.searchAll = !m.searchAll
		m.loadData()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		m.pane = PaneTaskList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter as user types
	m.filterText = m.input.Value()
	m.taskCursor = 0
	m.loadData()
	return m, cmd
}
