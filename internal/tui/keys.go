package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the shelf responds to. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Open     key.Binding
	Back     key.Binding
	Home     key.Binding
	Notes    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev book"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next book"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "home"),
		),
		Notes: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit notes"),
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

// gridMode enables the bindings that apply to the grid.
func (k *keyMap) gridMode() {
	k.setEnabled(true)
	k.Back.SetEnabled(false)
	k.Notes.SetEnabled(false)
}

// detailMode enables the bindings that apply to the detail view.
func (k *keyMap) detailMode() {
	k.setEnabled(false)
	k.Back.SetEnabled(true)
	k.Home.SetEnabled(true)
	k.Notes.SetEnabled(true)
	k.Up.SetEnabled(true)
	k.Down.SetEnabled(true)
	k.Help.SetEnabled(true)
	k.Quit.SetEnabled(true)
}

func (k *keyMap) setEnabled(v bool) {
	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Left, &k.Right, &k.Activate, &k.Open,
		&k.Back, &k.Home, &k.Notes, &k.Help, &k.Quit,
	} {
		b.SetEnabled(v)
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Open, k.Back, k.Notes, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Open, k.Back, k.Home},
		{k.Notes, k.Help, k.Quit},
	}
}
