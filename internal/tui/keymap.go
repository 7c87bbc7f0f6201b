package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Unlock     key.Binding
	NewRecord  key.Binding
	Stats      key.Binding
	Lock       key.Binding
	EditBudget key.Binding
	Confirm    key.Binding
	Back       key.Binding
	NextField  key.Binding
	PrevCat    key.Binding
	NextCat    key.Binding
	ParseText  key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Unlock: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "unlock"),
		),
		NewRecord: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add record"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
		Lock: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "lock"),
		),
		EditBudget: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "edit budget"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous category"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		ParseText: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "parse text"),
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
