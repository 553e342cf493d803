package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings holds display preferences
type Settings struct {
	Theme         string `json:"theme"`         // light or dark
	ShowCompleted bool   `json:"showCompleted"` // include completed todos in views
	SortBy        string `json:"sortBy"`        // priority, due (soonest first) or created (newest first)
	ViewMode      string `json:"viewMode"`      // list or compact
}

// DefaultSettings returns the settings a fresh store starts with
func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		ShowCompleted: true,
		SortBy:        "priority",
		ViewMode:      "list",
	}
}

// SettingsPatch holds the fields updateSettings merges. Nil fields are kept.
type SettingsPatch struct {
	Theme         *string
	ShowCompleted *bool
	SortBy        *string
	ViewMode      *string
}

// Apply returns s with the patch merged in
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.ShowCompleted != nil {
		s.ShowCompleted = *p.ShowCompleted
	}
	if p.SortBy != nil {
		s.SortBy = *p.SortBy
	}
	if p.ViewMode != nil {
		s.ViewMode = *p.ViewMode
	}
	return s
}

// ParseSetting builds a single-field patch from a key and its textual value.
// Keys accept both the persisted camelCase and a dashed form.
func ParseSetting(key, value string) (SettingsPatch, error) {
	var p SettingsPatch
	switch strings.ToLower(strings.ReplaceAll(key, "-", "")) {
	case "theme":
		p.Theme = &value
	case "showcompleted":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return p, fmt.Errorf("showCompleted: %w", err)
		}
		p.ShowCompleted = &b
	case "sortby":
		p.SortBy = &value
	case "viewmode":
		p.ViewMode = &value
	default:
		return p, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return p, nil
}
