package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style + wrap width. WithAutoStyle can block on
	// terminal background queries, so a fixed style is always passed.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for the preview pane. On any renderer error the
// raw markdown is returned.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	styleName := markdownStyle()
	key := styleName + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(styleName)
		zero := uint(0)
		cfg.Document.Margin = &zero
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	if styleName == "light" {
		cfg := styles.LightStyleConfig
		applyDialogMarkdownPalette(&cfg, "light")
		return cfg
	}
	cfg := styles.DarkStyleConfig
	applyDialogMarkdownPalette(&cfg, "dark")
	return cfg
}

// markdownStyle picks light or dark glamour styling. SHARE_TUI_MD_STYLE wins;
// otherwise it follows the same signals as applyThemePreference.
func markdownStyle() string {
	for _, env := range []string{"SHARE_TUI_MD_STYLE", "SHARE_TUI_THEME"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(env))) {
		case "light":
			return "light"
		case "dark":
			return "dark"
		}
	}
	if dark, ok := darkBackgroundFromEnv(); ok {
		if dark {
			return "dark"
		}
		return "light"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func applyDialogMarkdownPalette(cfg *ansi.StyleConfig, styleName string) {
	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H2.Color = headingColor
	cfg.H3.Color = headingColor

	// Badge links are the point of the preview: accent + underline.
	linkColor := mdColor(colorAccent, styleName)
	cfg.Link.Color = linkColor
	cfg.Link.Underline = mdBoolPtr(true)
	cfg.LinkText.Color = linkColor
	cfg.LinkText.Underline = mdBoolPtr(true)
	cfg.ImageText.Color = linkColor

	cfg.Code.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if styleName == "light" {
		return mdStrPtr(c.Light)
	}
	return mdStrPtr(c.Dark)
}

func mdStrPtr(s string) *string { return &s }
func mdBoolPtr(b bool) *bool    { return &b }
