package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Equals key.Binding
	Clear  key.Binding
	Sqrt   key.Binding
	Negate key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("=", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Sqrt: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sqrt"),
		),
		Negate: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "negate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.Clear},
		{k.Sqrt, k.Negate},
		{k.Help, k.Quit},
	}
}
