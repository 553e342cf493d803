package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/spacetask/internal/view"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your streak and progress",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	today := a.store.Today()
	sum := view.Summarize(a.store.Todos(), a.store.Now())

	fmt.Println()
	fmt.Println("📊 Statistics")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("  🔥 Streak            %s\n", plural(today.Streak, "day"))
	fmt.Printf("  ✓  Done today        %d\n", today.CompletedToday)
	fmt.Printf("  📈 Completion rate   %d%% (%d/%d)\n", sum.CompletionRate, sum.Completed, sum.Total)
	fmt.Printf("  ⏱️  Time invested     %s\n", view.FormatDuration(sum.TimeSpent))
	if sum.Overdue > 0 {
		fmt.Printf("  ⚠️  Overdue           %d\n", sum.Overdue)
	}
	fmt.Println()
	return nil
}
