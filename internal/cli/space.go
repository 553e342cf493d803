package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/spacetask/internal/model"
	"github.com/existflow/spacetask/internal/view"
	"github.com/spf13/cobra"
)

var spaceCmd = &cobra.Command{
	Use:     "space",
	Aliases: []string{"spaces"},
	Short:   "Manage spaces",
	Long: `Create, list and switch between spaces.

The active space is where new tasks go and what 'spacetask list' shows.

Examples:
  spacetask space new "Work" --icon 💼
  spacetask space ls
  spacetask space use 1718000000000`,
	RunE: runSpaceList,
}

var spaceNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new space",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSpaceNew,
}

var spaceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all spaces",
	RunE:    runSpaceList,
}

var spaceUseCmd = &cobra.Command{
	Use:   "use [space-id]",
	Short: "Switch the active space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceUse,
}

var spaceFavCmd = &cobra.Command{
	Use:   "fav [space-id]",
	Short: "Toggle a space as favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceFav,
}

var (
	spaceIcon     string
	spaceFavorite bool
	spaceUse      bool
)

func init() {
	spaceNewCmd.Flags().StringVarP(&spaceIcon, "icon", "i", model.DefaultIcon, "Space icon (an emoji)")
	spaceNewCmd.Flags().BoolVar(&spaceFavorite, "favorite", false, "Mark the space as favorite")
	spaceNewCmd.Flags().BoolVar(&spaceUse, "use", false, "Switch to the new space")

	spaceCmd.AddCommand(spaceNewCmd)
	spaceCmd.AddCommand(spaceListCmd)
	spaceCmd.AddCommand(spaceUseCmd)
	spaceCmd.AddCommand(spaceFavCmd)
}

func runSpaceNew(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	l, err := a.store.AddList(cmd.Context(), model.NewList{
		Name:       strings.Join(args, " "),
		Icon:       spaceIcon,
		IsFavorite: spaceFavorite,
	})
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}
	fmt.Printf("✓ Created space: %s (id: %d)\n", l.Label(), l.ID)

	if spaceUse {
		if _, err := a.store.SetActiveList(cmd.Context(), l.ID); err != nil {
			return fmt.Errorf("failed to switch space: %w", err)
		}
		fmt.Printf("📁 Switched to: %s\n", l.Label())
	}
	return nil
}

func runSpaceList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.greet()

	lists := a.store.Lists()
	todos := a.store.Todos()
	active := a.store.ActiveList()

	fmt.Println()
	fmt.Printf("  %-15s  %-24s  %s\n", "ID", "Name", "Tasks")
	fmt.Println(strings.Repeat("─", 56))

	totalPending := 0
	for _, l := range lists {
		counts := view.ListCounts(todos, l.ID)
		totalPending += counts.Pending

		marker := "  "
		if l.ID == active {
			marker = "❯ "
		}
		star := ""
		if l.IsFavorite {
			star = " ★"
		}
		fmt.Printf("%s%-15d  %-24s  %d/%d\n", marker, l.ID, l.Label()+star, counts.Pending, counts.Total)
	}

	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("  %d spaces, %d pending tasks\n\n", len(lists), totalPending)
	return nil
}

func runSpaceUse(cmd *cobra.Command, args []string) error {
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

	ok, err := a.store.SetActiveList(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to switch space: %w", err)
	}
	if !ok {
		fmt.Printf("Space not found: %d\n", id)
		return nil
	}

	l, _ := a.store.List(id)
	counts := view.ListCounts(a.store.Todos(), id)
	fmt.Printf("📁 Switched to: %s (%d/%d tasks)\n", l.Label(), counts.Pending, counts.Total)
	return nil
}

func runSpaceFav(cmd *cobra.Command, args []string) error {
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

	l, ok, err := a.store.ToggleFavorite(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to update space: %w", err)
	}
	if !ok {
		fmt.Printf("Space not found: %d\n", id)
		return nil
	}

	if l.IsFavorite {
		fmt.Printf("★ Favorited: %s\n", l.Label())
	} else {
		fmt.Printf("☆ Unfavorited: %s\n", l.Label())
	}
	return nil
}
