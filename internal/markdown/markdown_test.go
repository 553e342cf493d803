package markdown

import (
	"strings"
	"testing"
)

func TestRenderASCII(t *testing.T) {
	out := Render(60, "# Title\n\nSome `code` here.", ThemeASCII)
	if !strings.Contains(out, "Title") || !strings.Contains(out, "code") {
		t.Errorf("rendered output missing content: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Errorf("trailing newline not trimmed: %q", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(60, "  \n", ThemeASCII); out != "" {
		t.Errorf("Render(blank) = %q, want empty", out)
	}
}

func TestRendererIsCached(t *testing.T) {
	a := markdownRenderer(40, ThemeDark)
	b := markdownRenderer(40, ThemeDark)
	if a == nil || a != b {
		t.Errorf("renderer not cached: %p %p", a, b)
	}
	if c := markdownRenderer(41, ThemeDark); c == a {
		t.Error("renderers for different widths must differ")
	}
}

func TestGuideIncludesKeys(t *testing.T) {
	g := Guide()
	if !strings.Contains(g, "spacetask add") || !strings.Contains(g, "| Key | Action |") {
		t.Errorf("guide incomplete:\n%s", g)
	}
}
