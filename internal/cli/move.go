package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move [task-id] [position]",
	Short: "Move a task and re-rank priorities by position",
	Long: `Move a task to a 1-based position among all tasks. Afterwards the first
third of tasks is high priority, the next third medium and the rest low.
Moves are not recorded in the undo history.

Examples:
  spacetask move 1718000000000 1`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return fmt.Errorf("invalid position %q: must be 1 or more", args[1])
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	ok, err := a.store.Reorder(cmd.Context(), id, pos-1)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	if !ok {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	t, _ := a.store.Todo(id)
	fmt.Printf("↕️  Moved \"%s\" to position %d (%s)\n", t.Text, min(pos, len(a.store.Todos())), t.Priority)
	return nil
}
