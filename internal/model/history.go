package model

// Action is the kind of mutation recorded in the undo log
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)

// HistoryEntry is one invertible mutation with the full todo it affected
type HistoryEntry struct {
	Action Action `json:"action"`
	Todo   Todo   `json:"todo"`
}

// Clone returns a deep copy of the entry
func (e HistoryEntry) Clone() HistoryEntry {
	return HistoryEntry{Action: e.Action, Todo: e.Todo.Clone()}
}
