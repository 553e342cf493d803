package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/existflow/spacetask/internal/model"
)

const (
	// SnapshotKey holds the serialized application state
	SnapshotKey = "todo-storage"
	// VisitedKey is set once the first-run help has been shown
	VisitedKey = "has-visited"
)

// SnapshotStore reads and writes the whole application snapshot under one key
type SnapshotStore struct {
	kv KV
}

// NewSnapshotStore wraps a KV
func NewSnapshotStore(kv KV) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Load returns the stored snapshot, or the first-run snapshot when none exists.
func (s *SnapshotStore) Load(ctx context.Context) (model.Snapshot, error) {
	snap := model.NewSnapshot()

	raw, err := s.kv.Get(ctx, SnapshotKey)
	if errors.Is(err, ErrNotFound) {
		return snap, nil
	}
	if err != nil {
		return snap, err
	}

	// Decode over the default settings so keys missing from older data keep
	// them. Collections are decoded from scratch and repaired by Normalize.
	snap.Lists, snap.Todos, snap.UndoStack, snap.RedoStack = nil, nil, nil, nil
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return model.NewSnapshot(), fmt.Errorf("failed to decode snapshot: %w", err)
	}
	snap.Normalize()
	return snap, nil
}

// Save writes the whole snapshot
func (s *SnapshotStore) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.kv.Set(ctx, SnapshotKey, string(data))
}

// FirstVisit reports whether this is the first visit and records the visit.
func (s *SnapshotStore) FirstVisit(ctx context.Context) (bool, error) {
	_, err := s.kv.Get(ctx, VisitedKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if err := s.kv.Set(ctx, VisitedKey, "true"); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the snapshot and the first-run flag
func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SnapshotKey); err != nil {
		return err
	}
	return s.kv.Delete(ctx, VisitedKey)
}
