package format

import (
	"bytes"
	"strings"
	"testing"
)

type samplePayload struct {
	Data sampleData `json:"data"`
}

type sampleData struct {
	ShareURL string         `json:"shareUrl"`
	Embed    string         `json:"embed"`
	Options  []sampleOption `json:"options"`
}

type sampleOption struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

func sample() samplePayload {
	return samplePayload{Data: sampleData{
		ShareURL: "https://x.io/p1?hideExplorer=1&showAppview=0",
		Embed:    `<iframe src="https://x.io/p1"></iframe>`,
		Options: []sampleOption{
			{Name: "hideExplorer", Value: true},
			{Name: "showAppview", Value: false},
		},
	}}
}

func TestWriteJSON_DoesNotEscapeMarkup(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<iframe src=\"https://x.io/p1\"></iframe>`) {
		t.Fatalf("expected raw markup in json; got %s", got)
	}
	if !strings.Contains(got, "hideExplorer=1&showAppview=0") {
		t.Fatalf("expected raw ampersand in json; got %s", got)
	}
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:data {:embed "<iframe src=\"https://x.io/p1\"></iframe>" :options [{:name "hideExplorer" :value true} {:name "showAppview" :value false}] :shareUrl "https://x.io/p1?hideExplorer=1&showAppview=0"}}` + "\n"
	if buf.String() != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", buf.String(), want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{1, true}, "b": map[string]any{}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :a [\n    1\n    true\n  ]\n  :b {}\n}\n"
	if buf.String() != want {
		t.Fatalf("pretty edn:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := strings.Join([]string{
		`data.embed: <iframe src="https://x.io/p1"></iframe>`,
		"data.options.hideExplorer: true",
		"data.options.showAppview: false",
		"data.shareUrl: https://x.io/p1?hideExplorer=1&showAppview=0",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("text:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteText_Scalar(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, "https://x.io"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != "https://x.io\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
