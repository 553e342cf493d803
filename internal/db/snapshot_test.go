package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/existflow/spacetask/internal/model"
)

func TestLoadMissingSnapshotReturnsFirstRunState(t *testing.T) {
	store := NewSnapshotStore(NewMemory())

	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Lists) != 1 || snap.Lists[0].ID != model.DefaultListID || !snap.Lists[0].IsDefault {
		t.Errorf("lists = %+v", snap.Lists)
	}
	if snap.ActiveList != model.DefaultListID || len(snap.Todos) != 0 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if !snap.Settings.ShowCompleted || snap.Settings.SortBy != "priority" {
		t.Errorf("settings = %+v", snap.Settings)
	}
}

func TestSnapshotSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(openTestDB(t))

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	snap := model.NewSnapshot()
	snap.Lists = append(snap.Lists, model.List{ID: 2, Name: "Work", Icon: "💼", IsFavorite: true})
	snap.ActiveList = 2
	snap.Todos = append(snap.Todos, model.Todo{
		ID: 10, Text: "Ship it", ListID: 2, Priority: model.PriorityHigh,
		CreatedAt: created, TimeSpent: 90,
	})
	snap.UndoStack = append(snap.UndoStack, model.HistoryEntry{Action: model.ActionAdd, Todo: snap.Todos[0]})
	snap.Settings.Theme = "dark"
	snap.Statistics = model.Statistics{CompletedToday: 1, CompletedTodayIDs: []int64{10}, Streak: 3, LastCompleted: "2026-01-02"}

	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Lists) != 2 || got.Lists[1].Name != "Work" || !got.Lists[1].IsFavorite {
		t.Errorf("lists = %+v", got.Lists)
	}
	if got.ActiveList != 2 {
		t.Errorf("active list = %d", got.ActiveList)
	}
	if len(got.Todos) != 1 || got.Todos[0].Text != "Ship it" || !got.Todos[0].CreatedAt.Equal(created) {
		t.Errorf("todos = %+v", got.Todos)
	}
	if len(got.UndoStack) != 1 || got.UndoStack[0].Action != model.ActionAdd {
		t.Errorf("undo stack = %+v", got.UndoStack)
	}
	if got.Settings.Theme != "dark" || got.Statistics.Streak != 3 {
		t.Errorf("settings/statistics = %+v / %+v", got.Settings, got.Statistics)
	}
}

func TestLoadKeepsDefaultSettingsForOldData(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	_ = kv.Set(ctx, SnapshotKey, `{"lists":[{"id":7,"name":"Home","icon":"🏠","isDefault":true}],"todos":[],"activeList":7}`)

	snap, err := NewSnapshotStore(kv).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Settings != model.DefaultSettings() {
		t.Errorf("settings = %+v", snap.Settings)
	}
	if snap.UndoStack == nil || snap.RedoStack == nil {
		t.Error("stacks not normalized")
	}
	if snap.ActiveList != 7 {
		t.Errorf("active list = %d", snap.ActiveList)
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	_ = kv.Set(ctx, SnapshotKey, "{not json")

	if _, err := NewSnapshotStore(kv).Load(ctx); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFirstVisit(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(NewMemory())

	first, err := store.FirstVisit(ctx)
	if err != nil || !first {
		t.Fatalf("first call = %v, %v", first, err)
	}
	again, err := store.FirstVisit(ctx)
	if err != nil || again {
		t.Fatalf("second call = %v, %v", again, err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if fresh, _ := store.FirstVisit(ctx); !fresh {
		t.Error("Clear should reset the first-run flag")
	}
}

type failingKV struct{ *Memory }

func (failingKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }

func TestSaveSurfacesWriteErrors(t *testing.T) {
	store := NewSnapshotStore(failingKV{NewMemory()})
	if err := store.Save(context.Background(), model.NewSnapshot()); err == nil {
		t.Fatal("expected write error")
	}
}
