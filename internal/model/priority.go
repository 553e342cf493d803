package model

import (
	"fmt"
	"strings"
)

// Priority levels for todos
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every level from most to least urgent
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high first, low last
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Title returns the capitalised name, e.g. "High"
func (p Priority) Title() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePriority accepts a level name or its first letter, in any case.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "high":
		return PriorityHigh, nil
	case "m", "medium", "med":
		return PriorityMedium, nil
	case "l", "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}
