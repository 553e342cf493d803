package view

import (
	"testing"
	"time"

	"github.com/existflow/spacetask/internal/model"
)

var now = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

func fixture() []model.Todo {
	done := now.Add(-time.Hour)
	return []model.Todo{
		{ID: 1, ListID: 1, Text: "Low chore", Priority: model.PriorityLow},
		{ID: 2, ListID: 1, Text: "Done high", Priority: model.PriorityHigh, Completed: true, CompletedAt: &done},
		{ID: 3, ListID: 1, Text: "Urgent report", Priority: model.PriorityHigh, Notes: "for the Board"},
		{ID: 4, ListID: 2, Text: "Other list", Priority: model.PriorityHigh},
		{ID: 5, ListID: 1, Text: "Medium thing", Priority: model.PriorityMedium},
		{ID: 6, ListID: 1, Text: "Another high", Priority: model.PriorityHigh},
	}
}

func idsOf(todos []model.Todo) []int64 {
	var out []int64
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []model.Todo, want ...int64) {
	t.Helper()
	g := idsOf(got)
	if len(g) != len(want) {
		t.Fatalf("ids = %v, want %v", g, want)
	}
	for i := range g {
		if g[i] != want[i] {
			t.Fatalf("ids = %v, want %v", g, want)
		}
	}
}

func TestVisibleSortsOpenFirstThenByPriority(t *testing.T) {
	got := Visible(fixture(), Query{ListID: 1, ShowCompleted: true})
	sameIDs(t, got, 3, 6, 5, 1, 2)
}

func TestVisibleHidesCompleted(t *testing.T) {
	got := Visible(fixture(), Query{ListID: 1, ShowCompleted: false})
	sameIDs(t, got, 3, 6, 5, 1)
}

func TestVisibleSearchesTextAndNotes(t *testing.T) {
	sameIDs(t, Visible(fixture(), Query{ListID: 1, ShowCompleted: true, Search: "board"}), 3)
	sameIDs(t, Visible(fixture(), Query{ListID: 1, ShowCompleted: true, Search: "HIGH"}), 6, 2)
	sameIDs(t, Visible(fixture(), Query{ListID: 1, ShowCompleted: true, Search: "nothing"}))
}

func TestVisibleAllLists(t *testing.T) {
	got := Visible(fixture(), Query{ShowCompleted: false})
	sameIDs(t, got, 3, 4, 6, 5, 1)
}

func TestVisibleDoesNotReorderInput(t *testing.T) {
	in := fixture()
	Visible(in, Query{ListID: 1, ShowCompleted: true})
	sameIDs(t, in, 1, 2, 3, 4, 5, 6)
}

func TestSortByDueAndCreated(t *testing.T) {
	soon, later := now.Add(24*time.Hour), now.Add(72*time.Hour)
	todos := []model.Todo{
		{ID: 1, ListID: 1, Priority: model.PriorityHigh, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: 2, ListID: 1, Priority: model.PriorityLow, DueDate: &later, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 3, ListID: 1, Priority: model.PriorityLow, DueDate: &soon, CreatedAt: now.Add(-2 * time.Hour)},
	}
	sameIDs(t, Visible(todos, Query{ListID: 1, SortBy: SortDue}), 3, 2, 1)
	sameIDs(t, Visible(todos, Query{ListID: 1, SortBy: SortCreated}), 2, 3, 1)
}

func TestQueryFor(t *testing.T) {
	s := model.DefaultSettings()
	s.ShowCompleted = false
	q := QueryFor(7, s, "milk")
	if q.ListID != 7 || q.ShowCompleted || q.Search != "milk" || q.SortBy != SortPriority {
		t.Errorf("QueryFor = %+v", q)
	}
}

func TestListCounts(t *testing.T) {
	c := ListCounts(fixture(), 1)
	if c.Total != 5 || c.Pending != 4 {
		t.Errorf("counts = %+v", c)
	}
}
