package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Copy     key.Binding
	CopyURL  key.Binding
	CopyEmb  key.Binding
	CopyMD   key.Binding
	CopyHTML key.Binding
	Preview  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "toggle/copy")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy field")),
		CopyURL:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "copy url")),
		CopyEmb:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "copy embed")),
		CopyMD:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "copy markdown")),
		CopyHTML: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "copy html")),
		Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate, k.Copy},
		{k.CopyURL, k.CopyEmb, k.CopyMD, k.CopyHTML},
		{k.Preview, k.Help, k.Quit},
	}
}
