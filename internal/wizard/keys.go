package wizard

import "github.com/charmbracelet/bubbles/key"

// keyMap is the wizard's key bindings. It implements help.KeyMap.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Back    key.Binding
	Save    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "b"),
			key.WithHelp("←/b", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save report"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Confirm},
		{k.Back, k.Save, k.Restart},
		{k.Help, k.Quit},
	}
}

// forScreen enables only the bindings that do something on s.
func (k keyMap) forScreen(s screen, multi bool) keyMap {
	onQuestion := s == screenQuestion
	k.Up.SetEnabled(onQuestion)
	k.Down.SetEnabled(onQuestion)
	k.Toggle.SetEnabled(onQuestion && multi)
	k.Confirm.SetEnabled(onQuestion)
	k.Save.SetEnabled(s == screenResults)
	k.Restart.SetEnabled(s == screenResults)
	return k
}
