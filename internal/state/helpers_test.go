package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/existflow/spacetask/internal/model"
)

// fakeClock is a settable clock for date-dependent tests
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recorder keeps every snapshot it is asked to save
type recorder struct {
	saves []model.Snapshot
	err   error
}

func (r *recorder) Save(_ context.Context, snap model.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, snap)
	return nil
}

func (r *recorder) last() model.Snapshot { return r.saves[len(r.saves)-1] }

var errDiskFull = errors.New("disk full")

func newTestStore(t *testing.T) (*Store, *fakeClock, *recorder) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)}
	rec := &recorder{}
	s := New(model.NewSnapshot(), Options{Persister: rec, Now: clock.Now})
	return s, clock, rec
}

func mustAdd(t *testing.T, s *Store, text string) model.Todo {
	t.Helper()
	todo, err := s.AddTodo(context.Background(), model.NewTodo{Text: text, ListID: model.DefaultListID})
	if err != nil {
		t.Fatalf("AddTodo(%q): %v", text, err)
	}
	return todo
}

func ids(todos []model.Todo) []int64 {
	out := make([]int64, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
