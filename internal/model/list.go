package model

import (
	"strings"
)

// DefaultListID is the id of the list every store starts with
const DefaultListID int64 = 1

// DefaultIcon is used when a list is created without one
const DefaultIcon = "📝"

// List represents a named space that groups todos
type List struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	IsDefault  bool   `json:"isDefault"`
	IsFavorite bool   `json:"isFavorite"`
}

// DefaultList returns the built-in "My Tasks" list
func DefaultList() List {
	return List{
		ID:        DefaultListID,
		Name:      "My Tasks",
		Icon:      DefaultIcon,
		IsDefault: true,
	}
}

// Label returns the icon and name joined for display
func (l List) Label() string {
	if l.Icon == "" {
		return l.Name
	}
	return l.Icon + " " + l.Name
}

// NewList is the input accepted by addList
type NewList struct {
	Name       string
	Icon       string
	IsDefault  bool
	IsFavorite bool
}

// Normalize trims the name, fills in the default icon and rejects empty names.
func (n NewList) Normalize() (NewList, error) {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return n, ErrEmptyName
	}
	n.Icon = strings.TrimSpace(n.Icon)
	if n.Icon == "" {
		n.Icon = DefaultIcon
	}
	return n, nil
}
