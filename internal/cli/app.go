package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/existflow/spacetask/internal/config"
	"github.com/existflow/spacetask/internal/db"
	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/state"
)

// app is what a command needs to run one operation against the store
type app struct {
	db         *db.DB // nil with --memory
	snapshots  *db.SnapshotStore
	store      *state.Store
	log        *logger.Logger
	firstVisit bool
}

// openApp opens the database, loads the snapshot and records the visit
func openApp(ctx context.Context) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var (
		dbConn *db.DB
		kv     db.KV
	)
	if memory {
		kv = db.NewMemory()
	} else {
		path := cfg.DBPath
		if path == "" {
			p, err := db.DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}

		conn, err := db.Open(path)
		if err != nil {
			logger.Error("Failed to open database", logger.F("error", err))
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		dbConn, kv = conn, conn
	}

	log := logger.WithFields(logger.F("run", runID))
	snapshots := db.NewSnapshotStore(kv)
	store, err := state.Open(ctx, snapshots, state.Options{
		Logger:       log,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		if dbConn != nil {
			_ = dbConn.Close()
		}
		return nil, err
	}

	// a throwaway run is always a first visit, so it gets no hint
	first := false
	if !memory {
		if first, err = snapshots.FirstVisit(ctx); err != nil {
			log.Warn("Failed to read first-run flag", logger.F("error", err))
		}
	}

	return &app{
		db:         dbConn,
		snapshots:  snapshots,
		store:      store,
		log:        log,
		firstVisit: first,
	}, nil
}

// Close releases the database
func (a *app) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn("Failed to close database", logger.F("error", err))
		return
	}
	a.log.Debug("Database closed")
}

// greet prints the first-run hint on stderr so piped output stays clean
func (a *app) greet() {
	if a.firstVisit {
		fmt.Fprintln(os.Stderr, "👋 Welcome to SpaceTask! Run 'spacetask guide' for a quick tour.")
	}
}

// parseID parses a todo or space id as printed by list
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDue understands "today", "tomorrow", "+Nd" and YYYY-MM-DD. Dates are
// midnight in the local zone.
func parseDue(s string, now time.Time) (*time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var due time.Time
	switch {
	case s == "":
		return nil, nil
	case s == "today":
		due = today
	case s == "tomorrow":
		due = today.AddDate(0, 0, 1)
	case strings.HasPrefix(s, "+") && strings.HasSuffix(s, "d"):
		n, err := strconv.Atoi(s[1 : len(s)-1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid due date %q", s)
		}
		due = today.AddDate(0, 0, n)
	default:
		t, err := time.ParseInLocation(time.DateOnly, s, now.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q (use today, tomorrow, +3d or YYYY-MM-DD)", s)
		}
		due = t
	}
	return &due, nil
}

// resolveList returns the list a command targets: the given id, or the
// active list when id is zero.
func resolveList(store *state.Store, id int64) (model.List, error) {
	if id == 0 {
		id = store.ActiveList()
	}
	l, ok := store.List(id)
	if !ok {
		return model.List{}, fmt.Errorf("space not found: %d", id)
	}
	return l, nil
}

// confirm asks a yes/no question on stdin. Anything but y/Y is a no.
func confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	var answer string
	_, _ = fmt.Scanln(&answer)
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
