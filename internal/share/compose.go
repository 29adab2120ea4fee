package share

import (
	"fmt"
	"strings"
)

const (
	// BadgeImageURL is the promotional image used by both badge formats.
	BadgeImageURL = "https://superblocks.com/static/img/open-superblocks.svg"
	BadgeAlt      = "Edit Project"

	embedStyle = "width:100%; height:500px; border:0; border-radius: 4px; overflow:hidden;"
)

// BuildShareURL appends the option query to baseURL.
//
// The "?" separator is always inserted, even when baseURL already carries a
// query string.
func BuildShareURL(baseURL string, opts OptionSet) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteByte('?')
	for i, e := range opts.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(string(e.Name))
		if e.Value {
			b.WriteString("=1")
		} else {
			b.WriteString("=0")
		}
	}
	return b.String()
}

func BuildEmbedSnippet(shareURL string) string {
	return fmt.Sprintf(`<iframe src="%s" style="%s"></iframe>`, shareURL, embedStyle)
}

func BuildMarkdownBadge(shareURL string) string {
	return fmt.Sprintf("[![%s](%s)](%s)", BadgeAlt, BadgeImageURL, shareURL)
}

func BuildHTMLBadge(shareURL string) string {
	return fmt.Sprintf(`<a href="%s"><img alt="%s" src="%s"></a>`, shareURL, BadgeAlt, BadgeImageURL)
}

// Representations holds every shareable rendering of one share URL.
type Representations struct {
	URL      string `json:"url"`
	Embed    string `json:"embed"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func Compose(shareURL string) Representations {
	return Representations{
		URL:      shareURL,
		Embed:    BuildEmbedSnippet(shareURL),
		Markdown: BuildMarkdownBadge(shareURL),
		HTML:     BuildHTMLBadge(shareURL),
	}
}

// Target selects one of the four representations.
type Target string

const (
	TargetURL      Target = "url"
	TargetEmbed    Target = "embed"
	TargetMarkdown Target = "markdown"
	TargetHTML     Target = "html"
)

// Targets lists the representations in display order.
var Targets = []Target{TargetURL, TargetEmbed, TargetMarkdown, TargetHTML}

// Pick returns the text for t, or false when t is not a known target.
func (r Representations) Pick(t Target) (string, bool) {
	switch t {
	case TargetURL:
		return r.URL, true
	case TargetEmbed:
		return r.Embed, true
	case TargetMarkdown:
		return r.Markdown, true
	case TargetHTML:
		return r.HTML, true
	default:
		return "", false
	}
}

// TargetLabel is the field label used by the dialog.
func TargetLabel(t Target) string {
	switch t {
	case TargetURL:
		return "Editor"
	case TargetEmbed:
		return "Embed"
	case TargetMarkdown:
		return "Button Markdown"
	case TargetHTML:
		return "Button HTML"
	default:
		return string(t)
	}
}

// ParseTarget accepts target names and a few common aliases.
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "url", "link", "editor":
		return TargetURL, true
	case "embed", "iframe":
		return TargetEmbed, true
	case "markdown", "md", "button-md":
		return TargetMarkdown, true
	case "html", "button-html":
		return TargetHTML, true
	default:
		return "", false
	}
}
