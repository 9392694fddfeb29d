package demo

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo's key bindings. It implements help.KeyMap.
type keyMap struct {
	DragUp     key.Binding
	DragDown   key.Binding
	Release    key.Binding
	FlingUp    key.Binding
	FlingDown  key.Binding
	Next       key.Binding
	Prev       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Background key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		DragUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "drag up"),
		),
		DragDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "drag down"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "release"),
		),
		FlingUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "fling up"),
		),
		FlingDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "fling down"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev section"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Background: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "background"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DragDown, k.Release, k.FlingDown, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DragUp, k.DragDown, k.Release},
		{k.FlingUp, k.FlingDown},
		{k.Next, k.Prev, k.Top, k.Bottom},
		{k.Background, k.Help, k.Quit},
	}
}
