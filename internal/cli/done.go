package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done, or reopen it",
	Long: `Toggle a task between open and completed. Completing tasks on
consecutive days builds your streak.

Examples:
  spacetask done 1718000000000`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	t, ok, err := a.store.ToggleTodo(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if !ok {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	if t.Completed {
		stats := a.store.Today()
		fmt.Printf("✓ Completed: \"%s\"\n", t.Text)
		fmt.Printf("🔥 Streak: %s · %d done today\n", plural(stats.Streak, "day"), stats.CompletedToday)
	} else {
		fmt.Printf("○ Reopened: \"%s\"\n", t.Text)
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
