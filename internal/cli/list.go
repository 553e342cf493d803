package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/state"
	"github.com/existflow/spacetask/internal/view"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List the tasks of the active space, or of another space.

Completed tasks follow the showCompleted setting unless --done is given.

Examples:
  spacetask list
  spacetask list --space 1718000000000
  spacetask list --all -q report
  spacetask list --json`,
	RunE: runList,
}

var (
	listSpace       int64
	listAll         bool
	listIncludeDone bool
	listQuery       string
	listJSON        bool
)

func init() {
	listCmd.Flags().Int64VarP(&listSpace, "space", "s", 0, "Space to list (default: active space)")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show all spaces")
	listCmd.Flags().BoolVar(&listIncludeDone, "done", false, "Include completed tasks")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only tasks whose text or notes contain this")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print tasks as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	q := view.QueryFor(0, a.store.Settings(), listQuery)
	if cmd.Flags().Changed("done") {
		q.ShowCompleted = listIncludeDone
	}

	var lists []model.List
	if listAll {
		lists = a.store.Lists()
	} else {
		l, err := resolveList(a.store, listSpace)
		if err != nil {
			return err
		}
		lists = []model.List{l}
	}

	todos := a.store.Todos()
	if listJSON {
		var out []model.Todo
		for _, l := range lists {
			q.ListID = l.ID
			out = append(out, view.Visible(todos, q)...)
		}
		return printJSON(out)
	}

	if len(todos) == 0 {
		fmt.Println("No tasks found. Add one with: spacetask add \"Your task\"")
		return nil
	}

	for _, l := range lists {
		q.ListID = l.ID
		printTasks(l, view.ListCounts(todos, l.ID), view.Visible(todos, q), a.store.Now())
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if string(data) == "null" {
		data = []byte("[]")
	}
	fmt.Println(string(data))
	return nil
}

func printTasks(l model.List, counts view.Counts, tasks []model.Todo, now time.Time) {
	fmt.Printf("\n%s (%d pending)\n", l.Label(), counts.Pending)
	fmt.Println(strings.Repeat("─", 72))

	if len(tasks) == 0 {
		fmt.Println("  Nothing here.")
	}
	for _, t := range tasks {
		printTask(t, now)
	}
	fmt.Println()
}

func printTask(t model.Todo, now time.Time) {
	// Status icon
	icon := "[ ]"
	if t.Completed {
		icon = "[x]"
	}

	// Priority indicator
	priority := "  " + t.Priority.Title()
	if t.Priority == model.PriorityHigh {
		priority = "▲ " + t.Priority.Title()
	}

	// Due date
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format("Jan 2")
		if !t.Completed && t.IsOverdue(now) {
			due = "!" + due
		}
	}

	text := truncate.StringWithTail(t.Text, 36, "...")

	fmt.Printf("  %s  %-14d  %-36s  %-7s  %-8s  %s\n",
		icon, t.ID, text, due, priority, view.FormatShort(t.TimeSpent))
}

// describeTodo is the short form used in confirmations
func describeTodo(store *state.Store, t model.Todo) string {
	if l, ok := store.List(t.ListID); ok {
		return fmt.Sprintf("\"%s\" in [%s]", t.Text, l.Label())
	}
	return fmt.Sprintf("\"%s\"", t.Text)
}
