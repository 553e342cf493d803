package cli

import (
	"fmt"

	"github.com/existflow/spacetask/internal/model"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last add or delete",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone add or delete",
	Args:  cobra.NoArgs,
	RunE:  runRedo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	e, ok, err := a.store.Undo(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to undo: %w", err)
	}
	if !ok {
		fmt.Println("Nothing to undo.")
		return nil
	}

	switch e.Action {
	case model.ActionAdd:
		fmt.Printf("↩️  Undid add: \"%s\" removed\n", e.Todo.Text)
	case model.ActionDelete:
		fmt.Printf("↩️  Undid delete: \"%s\" restored\n", e.Todo.Text)
	}
	return nil
}

func runRedo(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	e, ok, err := a.store.Redo(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to redo: %w", err)
	}
	if !ok {
		fmt.Println("Nothing to redo.")
		return nil
	}

	switch e.Action {
	case model.ActionAdd:
		fmt.Printf("↪️  Redid add: \"%s\" restored\n", e.Todo.Text)
	case model.ActionDelete:
		fmt.Printf("↪️  Redid delete: \"%s\" removed\n", e.Todo.Text)
	}
	return nil
}
