package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID. A deleted task can be brought back with 'spacetask undo'.

Examples:
  spacetask delete 1718000000000
  spacetask rm 1718000000000 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	t, ok := a.store.Todo(id)
	if !ok {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	// Check config
	if cfg.ConfirmDelete && !deleteForce {
		fmt.Printf("About to delete: %s (ID: %d)\n", describeTodo(a.store, t), t.ID)
		if !confirm("Are you sure?") {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if _, err := a.store.DeleteTodo(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("🗑️  Deleted: \"%s\" (undo with 'spacetask undo')\n", t.Text)
	return nil
}
