package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"share-cli/internal/share"

	tea "github.com/charmbracelet/bubbletea"
)

type memClipboard struct {
	mu     sync.Mutex
	writes []string
}

func (c *memClipboard) WriteAll(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, s)
	return nil
}

func newTestDialog(t *testing.T, base string) (dialogModel, *memClipboard) {
	t.Helper()
	cb := &memClipboard{}
	ctl := share.NewController(base, share.Capabilities{
		Clipboard: cb,
		Location:  share.LocatorFunc(func() string { return "https://fallback/page" }),
	})
	return newDialogModel(ctl), cb
}

func press(t *testing.T, m dialogModel, msg tea.KeyMsg) (dialogModel, tea.Cmd) {
	t.Helper()
	mAny, cmd := m.Update(msg)
	return mAny.(dialogModel), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// runCmd executes cmd and the commands of a batch, giving each a short
// window to finish; the flash tick is left running in the background.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		return
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		done := make(chan tea.Msg, 1)
		go func(c tea.Cmd) { done <- c() }(c)
		select {
		case <-done:
		case <-time.After(200 * time.Millisecond):
		}
	}
}

func TestDialog_RowsCoverOptionsThenFields(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")
	if len(m.rows) != 7 {
		t.Fatalf("expected 7 rows; got %d", len(m.rows))
	}
	for i := 0; i < 3; i++ {
		if !m.rows[i].isSwitch() || m.rows[i].option != share.KnownOptions[i] {
			t.Fatalf("row %d: %+v", i, m.rows[i])
		}
	}
	for i, tgt := range share.Targets {
		if m.rows[3+i].target != tgt {
			t.Fatalf("row %d: %+v", 3+i, m.rows[3+i])
		}
	}
}

func TestDialog_SpaceTogglesFocusedSwitch(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	want := "https://x.io/p1?hideExplorer=1&showTransactions=0&showAppview=0"
	if m.published.ShareURL != want {
		t.Fatalf("published url:\n got: %q\nwant: %q", m.published.ShareURL, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Fatalf("expected view to show new url")
	}
}

func TestDialog_ExclusiveSwitches(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	opts := m.published.Options
	if opts.Get(share.ShowTransactions) || !opts.Get(share.ShowAppview) {
		t.Fatalf("expected showAppview only; got %#v", opts.Entries())
	}
}

func TestDialog_FocusWraps(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.focus != len(m.rows)-1 {
		t.Fatalf("expected focus on last row; got %d", m.focus)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != 0 {
		t.Fatalf("expected focus to wrap to 0; got %d", m.focus)
	}
}

func TestDialog_CopyShortcutsSendCurrentText(t *testing.T) {
	m, cb := newTestDialog(t, "https://x.io/p1")

	m, cmd := press(t, m, runes("3"))
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	if !strings.Contains(m.flash, "Button Markdown") {
		t.Fatalf("expected flash for markdown copy; got %q", m.flash)
	}
	runCmd(cmd)

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if len(cb.writes) != 1 || cb.writes[0] != m.ctl.MarkdownBadge() {
		t.Fatalf("unexpected clipboard writes: %#v", cb.writes)
	}
}

func TestDialog_CopyKeyIgnoredOnSwitch(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")
	_, cmd := press(t, m, runes("c"))
	if cmd != nil {
		t.Fatalf("expected no command when copying from a switch row")
	}
}

func TestDialog_FlashClearsOnlyForLatestCopy(t *testing.T) {
	m, _ := newTestDialog(t, "https://x.io/p1")
	m, _ = press(t, m, runes("1"))
	m, _ = press(t, m, runes("2"))

	mAny, _ := m.Update(flashClearMsg{seq: 1})
	m = mAny.(dialogModel)
	if m.flash == "" {
		t.Fatalf("stale clear should not remove newer flash")
	}
	mAny, _ = m.Update(flashClearMsg{seq: 2})
	m = mAny.(dialogModel)
	if m.flash != "" {
		t.Fatalf("expected flash cleared; got %q", m.flash)
	}
}

func TestDialog_FallbackLocationShownUntilFirstToggle(t *testing.T) {
	m, _ := newTestDialog(t, "")
	if m.published.ShareURL != "https://fallback/page" {
		t.Fatalf("got %q", m.published.ShareURL)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.published.ShareURL, "https://fallback/page?hideExplorer=1") {
		t.Fatalf("got %q", m.published.ShareURL)
	}
}

func TestDialog_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _ := newTestDialog(t, "https://x.io/p1")
		_, cmd := press(t, m, k)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", k.String())
		}
	}
}

func TestDialog_PreviewToggle(t *testing.T) {
	t.Setenv("SHARE_TUI_MD_STYLE", "dark")
	m, _ := newTestDialog(t, "https://x.io/p1")
	if strings.Contains(m.View(), "Preview") {
		t.Fatalf("preview should be hidden by default")
	}
	m, _ = press(t, m, runes("p"))
	if !m.showPreview || !strings.Contains(m.View(), "Preview") {
		t.Fatalf("expected preview pane")
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("abcdefghij", 5)
	if got != "abcd…" {
		t.Fatalf("got %q", got)
	}
	if truncate("abc", 10) != "abc" {
		t.Fatalf("short strings must be untouched")
	}
}
