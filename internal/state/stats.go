package state

import (
	"slices"
	"time"

	"github.com/existflow/spacetask/internal/model"
)

// DayLayout is the format of Statistics.LastCompleted
const DayLayout = "2006-01-02"

// Day returns the calendar day of t in its own location
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Rollover clears the daily counters when the last recorded event was not today.
func Rollover(s model.Statistics, now time.Time) model.Statistics {
	s = s.Clone()
	if s.LastCompleted != Day(now) {
		s.CompletedToday = 0
		s.CompletedTodayIDs = []int64{}
	}
	return s
}

// Complete folds a false→true transition of todo id into the statistics.
// A todo counts at most once per day, however often it is reopened and
// completed again. The streak grows only when the previous event was
// yesterday; any other day, today included, starts it over at 1.
func Complete(s model.Statistics, id int64, now time.Time) model.Statistics {
	today := Day(now)
	yesterday := Day(now.AddDate(0, 0, -1))

	s = Rollover(s, now)
	if !slices.Contains(s.CompletedTodayIDs, id) {
		s.CompletedToday++
		s.CompletedTodayIDs = append(s.CompletedTodayIDs, id)
	}

	if s.LastCompleted == yesterday {
		s.Streak++
	} else {
		s.Streak = 1
	}
	s.LastCompleted = today
	return s
}

// Reopen folds a true→false transition into the statistics. Counters are not
// decremented; only the day marker moves.
func Reopen(s model.Statistics, now time.Time) model.Statistics {
	s = Rollover(s, now)
	s.LastCompleted = Day(now)
	return s
}

// ActiveStreak returns the streak as of now: zero once a whole day has passed
// without a completion.
func ActiveStreak(s model.Statistics, now time.Time) int {
	switch s.LastCompleted {
	case Day(now), Day(now.AddDate(0, 0, -1)):
		return s.Streak
	}
	return 0
}
