// Package markdown renders the built-in help text for the terminal.
package markdown

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

var (
	//go:embed guide.md
	guide string

	// Keys lists the interactive key bindings
	//go:embed keys.md
	Keys string
)

// Guide is the full tour printed by the guide command
func Guide() string {
	return guide + "\n" + Keys
}

// Themes accepted by Render. Anything else renders plain ASCII.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeASCII = "ascii"
)

type rendererKey struct {
	theme string
	width int
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]*glamour.TermRenderer{}
)

// Render formats markdown for the terminal at the given width. If rendering
// fails the input is returned unchanged.
func Render(width int, input, theme string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	renderer := markdownRenderer(width, theme)
	if renderer == nil {
		return input
	}
	out, err := renderer.Render(input)
	if err != nil {
		return input
	}
	return strings.TrimRight(out, "\n")
}

func styleFor(theme string) ansi.StyleConfig {
	switch theme {
	case ThemeDark:
		return styles.DarkStyleConfig
	case ThemeLight:
		return styles.LightStyleConfig
	default:
		return styles.ASCIIStyleConfig
	}
}

func markdownRenderer(width int, theme string) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	k := rendererKey{theme: theme, width: width}
	if cached, ok := renderers[k]; ok {
		return cached
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleFor(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[k] = created
	return created
}
