package view

import (
	"fmt"
	"time"

	"github.com/existflow/spacetask/internal/model"
)

// Summary is the progress panel: overall completion and time invested
type Summary struct {
	Total          int
	Completed      int
	CompletionRate int // percent, rounded
	CompletedToday int // by CompletedAt, independent of the streak counters
	TimeSpent      int64
	Overdue        int
}

// Summarize computes the progress panel from the todos
func Summarize(todos []model.Todo, now time.Time) Summary {
	var s Summary
	y, m, d := now.Date()
	for _, t := range todos {
		s.Total++
		s.TimeSpent += t.TimeSpent
		if t.Completed {
			s.Completed++
			if t.CompletedAt != nil {
				cy, cm, cd := t.CompletedAt.In(now.Location()).Date()
				if cy == y && cm == m && cd == d {
					s.CompletedToday++
				}
			}
		} else if t.IsOverdue(now) {
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = (s.Completed*100 + s.Total/2) / s.Total
	}
	return s
}

// FormatDuration renders seconds as "1h 5m"
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// FormatShort renders seconds compactly for list rows: "45s", "12m", "1h05m"
func FormatShort(seconds int64) string {
	switch {
	case seconds <= 0:
		return ""
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}
