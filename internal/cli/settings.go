package cli

import (
	"fmt"

	"github.com/existflow/spacetask/internal/model"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show display settings",
	Long: `Show or change display settings.

Keys: theme, showCompleted, sortBy (priority, due = soonest first, created = newest first), viewMode.

Examples:
  spacetask settings
  spacetask settings set show-completed false
  spacetask settings set sortBy due`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a display setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	printSettings(a.store.Settings())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	patch, err := model.ParseSetting(args[0], args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	s, err := a.store.UpdateSettings(cmd.Context(), patch)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("⚙️  Set %s = %s\n", args[0], args[1])
	printSettings(s)
	return nil
}

func printSettings(s model.Settings) {
	fmt.Printf("  theme          %s\n", s.Theme)
	fmt.Printf("  showCompleted  %t\n", s.ShowCompleted)
	fmt.Printf("  sortBy         %s\n", s.SortBy)
	fmt.Printf("  viewMode       %s\n", s.ViewMode)
}
