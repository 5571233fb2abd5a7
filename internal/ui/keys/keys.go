package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application key bindings
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Tab    key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Sort   key.Binding

	NextPage key.Binding
	PrevPage key.Binding
	PageSize key.Binding

	Status key.Binding
	Report key.Binding
	Toggle key.Binding

	Users    key.Binding
	Projects key.Binding
	Logout   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Enter:  key.NewBinding(key.WithKeys("enter")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Tab:    key.NewBinding(key.WithKeys("tab")),
		New:    key.NewBinding(key.WithKeys("n")),
		Edit:   key.NewBinding(key.WithKeys("e")),
		Delete: key.NewBinding(key.WithKeys("d")),
		Filter: key.NewBinding(key.WithKeys("f", "/")),
		Sort:   key.NewBinding(key.WithKeys("o")),

		NextPage: key.NewBinding(key.WithKeys("right", "l")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h")),
		PageSize: key.NewBinding(key.WithKeys("z")),

		Status: key.NewBinding(key.WithKeys("s")),
		Report: key.NewBinding(key.WithKeys("r")),
		Toggle: key.NewBinding(key.WithKeys("a")),

		Users:    key.NewBinding(key.WithKeys("u")),
		Projects: key.NewBinding(key.WithKeys("p")),
		Logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	}
}
