// Package view derives what a screen shows from the raw todos. Nothing here
// is cached or persisted; callers recompute on every read.
package view

import (
	"sort"

	"github.com/existflow/spacetask/internal/model"
)

// Sort orders accepted in Query.SortBy
const (
	SortPriority = "priority"
	SortDue      = "due"
	SortCreated  = "created"
)

// Query selects and orders todos for display
type Query struct {
	ListID        int64  // 0 matches every list
	ShowCompleted bool   // include completed todos
	Search        string // case-insensitive substring of text or notes
	SortBy        string // priority (default), due (soonest first) or created (newest first)
}

// QueryFor builds the query the settings and active list describe
func QueryFor(activeList int64, s model.Settings, search string) Query {
	return Query{
		ListID:        activeList,
		ShowCompleted: s.ShowCompleted,
		Search:        search,
		SortBy:        s.SortBy,
	}
}

// Visible filters todos by list, completion and search text, then sorts them:
// open todos before completed ones, and within each group by the query's
// order. The sort is stable so equal todos keep their collection order.
func Visible(todos []model.Todo, q Query) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if q.ListID != 0 && t.ListID != q.ListID {
			continue
		}
		if !q.ShowCompleted && t.Completed {
			continue
		}
		if !t.Matches(q.Search) {
			continue
		}
		out = append(out, t)
	}

	less := lessFunc(q.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return less(a, b)
	})
	return out
}

func lessFunc(sortBy string) func(a, b model.Todo) bool {
	byPriority := func(a, b model.Todo) bool {
		return a.Priority.Rank() < b.Priority.Rank()
	}

	switch sortBy {
	case SortDue:
		// todos with a due date first, earliest first, then by priority
		return func(a, b model.Todo) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return byPriority(a, b)
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			case !a.DueDate.Equal(*b.DueDate):
				return a.DueDate.Before(*b.DueDate)
			}
			return byPriority(a, b)
		}
	case SortCreated:
		// newest first
		return func(a, b model.Todo) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	default:
		return byPriority
	}
}

// Counts holds the sidebar numbers for one list
type Counts struct {
	Pending int
	Total   int
}

// ListCounts counts the todos in a list
func ListCounts(todos []model.Todo, listID int64) Counts {
	var c Counts
	for _, t := range todos {
		if t.ListID != listID {
			continue
		}
		c.Total++
		if !t.Completed {
			c.Pending++
		}
	}
	return c
}
