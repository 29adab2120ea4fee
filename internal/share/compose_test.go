package share

import (
	"strings"
	"testing"
)

func TestBuildShareURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		opts OptionSet
		want string
	}{
		{
			name: "hide explorer",
			base: "https://x.io/p1",
			opts: DefaultOptionSet().With(HideExplorer, true),
			want: "https://x.io/p1?hideExplorer=1&showTransactions=0&showAppview=0",
		},
		{
			name: "all false",
			base: "https://x.io/p1",
			opts: DefaultOptionSet(),
			want: "https://x.io/p1?hideExplorer=0&showTransactions=0&showAppview=0",
		},
		{
			name: "appended option keeps order",
			base: "https://x.io/p1",
			opts: DefaultOptionSet().With(ShowAppview, true).With("extra", true),
			want: "https://x.io/p1?hideExplorer=0&showTransactions=0&showAppview=1&extra=1",
		},
		{
			name: "existing query still gets question mark",
			base: "https://x.io/p1?v=2",
			opts: NewOptionSet(HideExplorer),
			want: "https://x.io/p1?v=2?hideExplorer=0",
		},
		{
			name: "empty set",
			base: "https://x.io/p1",
			opts: NewOptionSet(),
			want: "https://x.io/p1?",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuildShareURL(tt.base, tt.opts)
			if got != tt.want {
				t.Fatalf("BuildShareURL:\n got: %q\nwant: %q", got, tt.want)
			}
			if again := BuildShareURL(tt.base, tt.opts); again != got {
				t.Fatalf("not deterministic: %q vs %q", got, again)
			}
		})
	}
}

func TestBuildEmbedSnippet(t *testing.T) {
	u := "https://x.io/p1?hideExplorer=0"
	got := BuildEmbedSnippet(u)
	want := `<iframe src="https://x.io/p1?hideExplorer=0" style="width:100%; height:500px; border:0; border-radius: 4px; overflow:hidden;"></iframe>`
	if got != want {
		t.Fatalf("embed:\n got: %q\nwant: %q", got, want)
	}
	if !strings.Contains(got, `src="`+u+`"`) {
		t.Fatalf("expected src attribute to equal share url")
	}
}

func TestBuildMarkdownBadge(t *testing.T) {
	got := BuildMarkdownBadge("https://x.io/p1")
	want := "[![Edit Project](https://superblocks.com/static/img/open-superblocks.svg)](https://x.io/p1)"
	if got != want {
		t.Fatalf("markdown:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildHTMLBadge(t *testing.T) {
	got := BuildHTMLBadge("https://x.io/p1")
	want := `<a href="https://x.io/p1"><img alt="Edit Project" src="https://superblocks.com/static/img/open-superblocks.svg"></a>`
	if got != want {
		t.Fatalf("html:\n got: %q\nwant: %q", got, want)
	}
}

func TestCompose_PickEveryTarget(t *testing.T) {
	r := Compose("https://x.io/p1")
	for _, tgt := range Targets {
		text, ok := r.Pick(tgt)
		if !ok || !strings.Contains(text, "https://x.io/p1") {
			t.Fatalf("Pick(%s) = %q, %v", tgt, text, ok)
		}
	}
	if _, ok := r.Pick("nope"); ok {
		t.Fatalf("expected unknown target to be rejected")
	}
}

func TestParseTarget(t *testing.T) {
	cases := map[string]Target{
		"url":         TargetURL,
		" Editor ":    TargetURL,
		"iframe":      TargetEmbed,
		"md":          TargetMarkdown,
		"button-html": TargetHTML,
	}
	for in, want := range cases {
		got, ok := ParseTarget(in)
		if !ok || got != want {
			t.Fatalf("ParseTarget(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseTarget("pdf"); ok {
		t.Fatalf("expected pdf to be rejected")
	}
}
