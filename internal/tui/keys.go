package tui

import "github.com/charmbracelet/bubbles/key"

// FormKeys are the bindings shared by the list and detail views.
type FormKeys struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Toggle    key.Binding
	Reload    key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// NewFormKeys creates the view key bindings.
func NewFormKeys() FormKeys {
	return FormKeys{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", " "),
			key.WithHelp("←/→", "format"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
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

// Keys is the shared binding set.
var Keys = NewFormKeys()

// PickerKeys are the bindings of the full-screen pickers.
type PickerKeys struct {
	Select key.Binding
	Quit   key.Binding
}

// NewPickerKeys creates the picker key bindings.
func NewPickerKeys() PickerKeys {
	return PickerKeys{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}
