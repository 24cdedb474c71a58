package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	Add          key.Binding
	AddTitled    key.Binding
	Next         key.Binding
	Prev         key.Binding
	MoveLeft     key.Binding
	MoveRight    key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	ShrinkWidth  key.Binding
	GrowWidth    key.Binding
	ShrinkHeight key.Binding
	GrowHeight   key.Binding
	Close        key.Binding
	Lock         key.Binding
	ToggleMove   key.Binding
	ToggleResize key.Binding
	Debug        key.Binding
	Copy         key.Binding
	Command      key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add dialog"),
	),
	AddTitled: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "add dialog with title"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "select next dialog"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "select previous dialog"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "move left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "move right"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	ShrinkWidth: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "narrower"),
	),
	GrowWidth: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "wider"),
	),
	ShrinkHeight: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "shorter"),
	),
	GrowHeight: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "taller"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close dialog"),
	),
	Lock: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "lock / unlock dialog"),
	),
	ToggleMove: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "toggle moving"),
	),
	ToggleResize: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "toggle resizing"),
	),
	Debug: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "show position / size"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy geometry to clipboard"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command line"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Add,
		k.AddTitled,
		k.Next,
		k.Prev,
		k.MoveUp,
		k.MoveDown,
		k.MoveLeft,
		k.MoveRight,
		k.GrowWidth,
		k.ShrinkWidth,
		k.GrowHeight,
		k.ShrinkHeight,
		k.Close,
		k.Lock,
		k.ToggleMove,
		k.ToggleResize,
		k.Debug,
		k.Copy,
		k.Command,
		k.Quit,
	}
}
