package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause       key.Binding
	Restart     key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Algorithm   key.Binding
	Arrangement key.Binding
	Mute        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:       key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "pause")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Faster:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Algorithm:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "algorithm")),
		Arrangement: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "arrangement")),
		Mute:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Faster, k.Slower, k.Algorithm, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart, k.Mute},
		{k.Faster, k.Slower},
		{k.Algorithm, k.Arrangement},
		{k.Help, k.Quit},
	}
}
