package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shorter  key.Binding
	Longer   key.Binding
	Shortest key.Binding
	Longest  key.Binding
	Numbers  key.Binding
	Symbols  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shorter: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "longer"),
		),
		Shortest: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "min length"),
		),
		Longest: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "max length"),
		),
		Numbers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "numbers"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "special"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/enter", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shorter, k.Longer, k.Numbers, k.Symbols, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shorter, k.Longer, k.Shortest, k.Longest},
		{k.Numbers, k.Symbols},
		{k.Copy, k.Help, k.Quit},
	}
}
