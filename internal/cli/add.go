package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/spacetask/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new task",
	Long: `Add a new task to a space. Without --space the task goes to the active space.

Examples:
  spacetask add "Buy groceries"
  spacetask add "Meeting with team" -p high -d tomorrow
  spacetask add "Feature work" --space 1718000000000 -n "see ticket"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addSpace    int64
	addPriority string
	addDue      string
	addNotes    string
)

func init() {
	addCmd.Flags().Int64VarP(&addSpace, "space", "s", 0, "Space to add the task to (default: active space)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (high, medium, low)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (e.g., 'tomorrow', '+3d', '2026-01-15')")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	priority, err := model.ParsePriority(addPriority)
	if err != nil {
		return err
	}
	due, err := parseDue(addDue, a.store.Now())
	if err != nil {
		return err
	}
	list, err := resolveList(a.store, addSpace)
	if err != nil {
		return err
	}

	t, err := a.store.AddTodo(cmd.Context(), model.NewTodo{
		Text:     strings.Join(args, " "),
		ListID:   list.ID,
		Priority: priority,
		DueDate:  due,
		Notes:    addNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("✓ Added to [%s]: \"%s\" (%s) #%d\n", list.Label(), t.Text, t.Priority, t.ID)
	return nil
}
