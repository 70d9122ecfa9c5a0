package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap maps terminal keys onto the simulated board controls.
type KeyMap struct {
	EncoderUp   key.Binding
	EncoderDown key.Binding
	Main        key.Binding
	Confirm     key.Binding
	Left        key.Binding
	Right       key.Binding
	TiltForward key.Binding
	TiltBack    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EncoderUp, k.EncoderDown, k.Main, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EncoderUp, k.EncoderDown, k.Main, k.Confirm},
		{k.Left, k.Right, k.TiltForward, k.TiltBack},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default simulator bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		EncoderUp: key.NewBinding(
			key.WithKeys("k", "]"),
			key.WithHelp("k/]", "knob +"),
		),
		EncoderDown: key.NewBinding(
			key.WithKeys("j", "["),
			key.WithHelp("j/[", "knob -"),
		),
		Main: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "button"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "knob button"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		TiltForward: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "tilt forward"),
		),
		TiltBack: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "tilt back"),
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
