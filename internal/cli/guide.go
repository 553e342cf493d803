package cli

import (
	"fmt"
	"os"

	"github.com/existflow/spacetask/internal/markdown"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show a quick tour of SpaceTask",
	Args:  cobra.NoArgs,
	RunE:  runGuide,
}

func runGuide(cmd *cobra.Command, args []string) error {
	width, theme := 80, markdown.ThemeASCII
	if isTerminal() {
		theme = markdown.ThemeDark
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	fmt.Println(markdown.Render(width, markdown.Guide(), theme))
	return nil
}
