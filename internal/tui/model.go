package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/state"
	"github.com/existflow/spacetask/internal/view"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneTaskList
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeAddList
	ModeEditTask
	ModeFilter
	ModeConfirmDelete
	ModeHelp
	ModeStats
)

// doneDelay keeps a just-completed task in place before it sinks to the bottom
const doneDelay = 10 * time.Second

// Options configures the TUI
type Options struct {
	FirstVisit    bool // open on the help screen
	ConfirmDelete bool // ask before deleting a task
	Logger        *logger.Logger
}

// Model is the main TUI model
type Model struct {
	store *state.Store
	log   *logger.Logger
	lists []model.List
	tasks []model.Todo // visible tasks, in display order

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	listCursor int
	taskCursor int

	// Input
	input textinput.Model

	// Sorting state
	recentlyDone map[int64]time.Time

	// Live search over text and notes
	filterText string
	searchAll  bool // true = all spaces, false = current space

	// Time tracking
	timerID    int64
	timerStart time.Time

	confirmDelete bool
	message       string
}

// NewModel creates a new TUI model over store
func NewModel(store *state.Store, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	log.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		store:         store,
		log:           log,
		pane:          PaneTaskList,
		mode:          ModeNormal,
		input:         ti,
		recentlyDone:  make(map[int64]time.Time),
		confirmDelete: opts.ConfirmDelete,
	}
	if opts.FirstVisit {
		m.mode = ModeHelp
	}

	m.loadData()
	for i, l := range m.lists {
		if l.ID == store.ActiveList() {
			m.listCursor = i
		}
	}
	log.Debug("TUI model initialized",
		logger.F("lists", len(m.lists)),
		logger.F("tasks", len(m.tasks)))
	return m
}

// loadData re-derives the sidebar and the visible tasks from the store
func (m *Model) loadData() {
	m.lists = m.store.Lists()
	if m.listCursor >= len(m.lists) {
		m.listCursor = 0
	}

	q := view.QueryFor(m.store.ActiveList(), m.store.Settings(), m.filterText)
	if m.searchAll && m.filterText != "" {
		q.ListID = 0
	}

	// Tasks completed a moment ago keep their place until doneDelay passes
	now := m.store.Now()
	todos := m.store.Todos()
	held := make(map[int64]bool)
	for i := range todos {
		t := &todos[i]
		if done, ok := m.recentlyDone[t.ID]; ok && t.Completed && now.Sub(done) < doneDelay {
			t.Completed = false
			held[t.ID] = true
		}
	}
	m.tasks = view.Visible(todos, q)
	for i := range m.tasks {
		if held[m.tasks[i].ID] {
			m.tasks[i].Completed = true
		}
	}

	if m.taskCursor >= len(m.tasks) {
		m.taskCursor = max(len(m.tasks)-1, 0)
	}
}

func (m *Model) currentList() *model.List {
	if m.listCursor < len(m.lists) {
		return &m.lists[m.listCursor]
	}
	return nil
}

func (m *Model) currentTask() *model.Todo {
	if m.taskCursor < len(m.tasks) {
		return &m.tasks[m.taskCursor]
	}
	return nil
}

// selectTask moves the cursor to the task with id if it is visible
func (m *Model) selectTask(id int64) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.taskCursor = i
			return
		}
	}
}

// elapsed returns the running timer's duration
func (m *Model) elapsed() time.Duration {
	if m.timerID == 0 {
		return 0
	}
	return m.store.Now().Sub(m.timerStart)
}
