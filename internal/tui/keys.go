package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Deal     key.Binding
	Draw     key.Binding
	Evaluate key.Binding
	Sort     key.Binding
	Cheat    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", "select"),
		),
		Deal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "deal"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "draw"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "play"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Cheat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cheat"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Deal, k.Draw, k.Evaluate, k.Sort, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle},
		{k.Deal, k.Draw, k.Evaluate, k.Sort},
		{k.Cheat, k.Help, k.Quit},
	}
}
