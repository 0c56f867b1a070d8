package lookup

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Enter          key.Binding
	Back           key.Binding
	Tab            key.Binding
	ShiftTab       key.Binding
	ToggleFavorite key.Binding
	RemoveFavorite key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding

	focus Focus
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "favorite"),
		),
		RemoveFavorite: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// withFocus returns a copy whose help reflects the focused panel.
func (k keyMap) withFocus(f Focus) keyMap {
	k.focus = f
	switch f {
	case FocusInput:
		k.Enter.SetHelp("enter", "search")
	case FocusFavorites:
		k.Enter.SetHelp("enter", "look up")
	default:
		k.Enter.SetHelp("enter", "select")
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	switch k.focus {
	case FocusInput:
		return []key.Binding{k.Enter, k.Tab, k.ToggleFavorite, k.ForceQuit}
	case FocusFavorites:
		return []key.Binding{k.Up, k.Down, k.Enter, k.RemoveFavorite, k.Back, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.ToggleFavorite, k.Quit}
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Tab, k.ShiftTab, k.ToggleFavorite, k.RemoveFavorite},
		{k.Quit, k.ForceQuit},
	}
}
