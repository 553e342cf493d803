package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/view"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track [task-id] [duration]",
	Short: "Add time spent on a task",
	Long: `Add time spent working on a task. Durations use Go syntax.

Examples:
  spacetask track 1718000000000 25m
  spacetask track 1718000000000 1h30m`,
	Args: cobra.ExactArgs(2),
	RunE: runTrack,
}

func runTrack(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	d, err := time.ParseDuration(args[1])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[1], err)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	t, ok, err := a.store.TrackTime(cmd.Context(), id, d)
	if errors.Is(err, model.ErrNegativeTime) {
		return fmt.Errorf("duration must not be negative: %s", args[1])
	}
	if err != nil {
		return fmt.Errorf("failed to track time: %w", err)
	}
	if !ok {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	fmt.Printf("⏱️  Tracked %s on \"%s\" (total %s)\n",
		d.Round(time.Second), t.Text, view.FormatDuration(t.TimeSpent))
	return nil
}
