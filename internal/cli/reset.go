package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all spaces and tasks",
	Long: `Delete every space and task, the undo history and the statistics.
Display settings are kept unless --all is given, which also forgets the
settings and the first-run flag. This cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var (
	resetForce bool
	resetAll   bool
)

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Also reset settings and the first-run flag")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		if !confirm("Are you sure you want to clear all data?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("🧹 Clearing local data...")
	if err := a.store.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear local data: %w", err)
	}
	if resetAll {
		if err := a.snapshots.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear stored state: %w", err)
		}
	}
	fmt.Println("Local data cleared.")
	return nil
}
