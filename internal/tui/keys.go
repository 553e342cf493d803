package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Tab           key.Binding
	Enter         key.Binding
	Add           key.Binding
	Edit          key.Binding
	Done          key.Binding
	Delete        key.Binding
	NewList       key.Binding
	Favorite      key.Binding
	Undo          key.Binding
	Redo          key.Binding
	Timer         key.Binding
	MoveDown      key.Binding
	MoveUp        key.Binding
	ShowCompleted key.Binding
	Search        key.Binding
	Stats         key.Binding
	Help          key.Binding
	Quit          key.Binding
	Escape        key.Binding
}

var keys = keyMap{
	Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "spaces")),
	Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "tasks")),
	Tab:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/toggle")),
	Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Done:          key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
	Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	NewList:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new space")),
	Favorite:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
	Undo:          key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
	Redo:          key.NewBinding(key.WithKeys("r", "ctrl+y"), key.WithHelp("r", "redo")),
	Timer:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
	MoveDown:      key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
	MoveUp:        key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
	ShowCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show completed")),
	Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Stats:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
	Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
