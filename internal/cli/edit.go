package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/existflow/spacetask/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task",
	Long: `Change the text, priority, due date, notes or space of a task.
Edits are not recorded in the undo history.

Examples:
  spacetask edit 1718000000000 --text "Buy oat milk"
  spacetask edit 1718000000000 -p high --due +2d
  spacetask edit 1718000000000 --due none`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editText     string
	editPriority string
	editDue      string
	editNotes    string
	editSpace    int64
)

func init() {
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "New text")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (high, medium, low)")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New due date, or 'none' to clear it")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editCmd.Flags().Int64VarP(&editSpace, "space", "s", 0, "Move the task to this space")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	var patch model.TodoPatch
	flags := cmd.Flags()
	if flags.Changed("text") {
		patch.Text = &editText
	}
	if flags.Changed("priority") {
		p, err := model.ParsePriority(editPriority)
		if err != nil {
			return err
		}
		patch.Priority = &p
	}
	if flags.Changed("due") {
		if strings.EqualFold(editDue, "none") {
			patch.ClearDueDate = true
		} else {
			due, err := parseDue(editDue, a.store.Now())
			if err != nil {
				return err
			}
			patch.DueDate = due
			patch.ClearDueDate = due == nil
		}
	}
	if flags.Changed("notes") {
		patch.Notes = &editNotes
	}
	if flags.Changed("space") {
		patch.ListID = &editSpace
	}
	if patch.IsEmpty() {
		return errors.New("nothing to change: pass --text, --priority, --due, --notes or --space")
	}

	t, ok, err := a.store.UpdateTodo(cmd.Context(), id, patch)
	if errors.Is(err, model.ErrListNotFound) {
		return fmt.Errorf("space not found: %d", editSpace)
	}
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if !ok {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	fmt.Printf("✏️  Updated: %s\n", describeTodo(a.store, t))
	return nil
}
