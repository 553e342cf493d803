package model

import "errors"

var (
	// ErrEmptyText is returned when a todo would have no text.
	ErrEmptyText = errors.New("todo text cannot be empty")

	// ErrEmptyName is returned when a list would have no name.
	ErrEmptyName = errors.New("list name cannot be empty")

	// ErrInvalidPriority is returned for anything other than low, medium or high.
	ErrInvalidPriority = errors.New("priority must be low, medium or high")

	// ErrListNotFound is returned when a todo references a list that does not exist.
	ErrListNotFound = errors.New("list not found")

	// ErrDefaultExists is returned when a second default list is requested.
	ErrDefaultExists = errors.New("a default list already exists")

	// ErrNegativeTime is returned when tracked time would go below zero.
	ErrNegativeTime = errors.New("time spent cannot be negative")

	// ErrUnknownSetting is returned by ParseSetting for unrecognised keys.
	ErrUnknownSetting = errors.New("unknown setting")
)
