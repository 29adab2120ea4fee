package tui

import (
	"strings"
	"time"

	"share-cli/internal/share"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const flashDuration = 1500 * time.Millisecond

// row is either an option switch or a copyable field.
type row struct {
	option share.Option
	target share.Target
}

func (r row) isSwitch() bool { return r.option != "" }

type flashClearMsg struct{ seq int }

// copyDoneMsg is returned once a background copy finished. Its result is
// intentionally not carried: copying is fire-and-forget.
type copyDoneMsg struct{}

type dialogModel struct {
	ctl *share.Controller
	// published is refreshed by the controller's subscription after each toggle.
	published *share.State

	rows  []row
	focus int

	keys        keyMap
	help        help.Model
	showPreview bool

	flash    string
	flashSeq int

	width  int
	height int
}

func newDialogModel(ctl *share.Controller) dialogModel {
	st := ctl.State()
	published := &st
	ctl.Subscribe(func(next share.State) { *published = next })

	var rows []row
	for _, name := range ctl.Options().Names() {
		rows = append(rows, row{option: name})
	}
	for _, t := range share.Targets {
		rows = append(rows, row{target: t})
	}

	return dialogModel{
		ctl:       ctl,
		published: published,
		rows:      rows,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

func (m dialogModel) Init() tea.Cmd { return nil }

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case copyDoneMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.focus = (m.focus - 1 + len(m.rows)) % len(m.rows)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.focus = (m.focus + 1) % len(m.rows)
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			r := m.rows[m.focus]
			if r.isSwitch() {
				m.ctl.OnToggle(r.option)
				return m, nil
			}
			return m.copy(r.target)
		case key.Matches(msg, m.keys.Copy):
			r := m.rows[m.focus]
			if r.isSwitch() {
				return m, nil
			}
			return m.copy(r.target)
		case key.Matches(msg, m.keys.CopyURL):
			return m.copy(share.TargetURL)
		case key.Matches(msg, m.keys.CopyEmb):
			return m.copy(share.TargetEmbed)
		case key.Matches(msg, m.keys.CopyMD):
			return m.copy(share.TargetMarkdown)
		case key.Matches(msg, m.keys.CopyHTML):
			return m.copy(share.TargetHTML)
		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

// copy hands the current text for t to the clipboard off the event loop, so a
// slow clipboard helper never stalls rendering.
func (m dialogModel) copy(t share.Target) (tea.Model, tea.Cmd) {
	text, ok := m.ctl.Representations().Pick(t)
	if !ok {
		return m, nil
	}
	ctl := m.ctl
	m.flashSeq++
	seq := m.flashSeq
	m.flash = share.TargetLabel(t) + " sent to clipboard"

	return m, tea.Batch(
		func() tea.Msg {
			ctl.Copy(text)
			return copyDoneMsg{}
		},
		tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashClearMsg{seq: seq} }),
	)
}

func (m dialogModel) View() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	st := m.published

	title := lipgloss.NewStyle().Bold(true).Render("Share")
	base := styleMuted().Render(emptyAsDash(st.BaseURL))

	var lines []string
	lines = append(lines, title+"  "+base, "")
	for i, r := range m.rows {
		if r.isSwitch() {
			lines = append(lines, m.renderSwitch(r.option, st.Options.Get(r.option), i == m.focus, w))
			continue
		}
		if i > 0 && m.rows[i-1].isSwitch() {
			lines = append(lines, "")
		}
		text, _ := share.Representations{URL: st.ShareURL, Embed: st.Embed, Markdown: st.Markdown, HTML: st.HTML}.Pick(r.target)
		lines = append(lines, m.renderField(r.target, text, i == m.focus, w)...)
	}

	if m.showPreview {
		lines = append(lines, "", styleMuted().Render("Preview"), renderMarkdown(st.Markdown, w-2))
	}

	footer := m.help.View(m.keys)
	if m.flash != "" {
		footer = lipgloss.NewStyle().Foreground(colorFlash).Render(m.flash) + "\n" + footer
	}
	lines = append(lines, "", footer)
	return strings.Join(lines, "\n")
}

func (m dialogModel) renderSwitch(name share.Option, on bool, focused bool, width int) string {
	knob := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg).Foreground(colorSurfaceFg).Render("off")
	if on {
		knob = lipgloss.NewStyle().Padding(0, 1).Background(colorAccent).Foreground(colorAccentFg).Bold(true).Render(" on")
	}
	label := share.OptionLabel(name)
	gap := width - xansi.StringWidth(label) - xansi.StringWidth(knob) - 4
	if gap < 1 {
		gap = 1
	}
	line := label + strings.Repeat(" ", gap) + knob
	return focusLine(line, focused)
}

func (m dialogModel) renderField(t share.Target, text string, focused bool, width int) []string {
	label := share.TargetLabel(t)
	value := lipgloss.NewStyle().Background(colorInputBg).Foreground(colorSurfaceFg).
		Render(truncate(text, width-4))
	hint := styleMuted().Render("Copy URL")
	if !focused {
		hint = ""
	}
	head := label
	if hint != "" {
		head += "  " + hint
	}
	return []string{focusLine(head, focused), "  " + value}
}

func focusLine(s string, focused bool) string {
	if !focused {
		return "  " + s
	}
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true).Render("> " + s)
}

// truncate cuts s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width < 2 {
		width = 2
	}
	return xansi.Truncate(s, width, "…")
}

func emptyAsDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
