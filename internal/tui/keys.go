package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	trigger key.Binding
	copy    key.Binding
	status  key.Binding
	info    key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j", "tab")),
	trigger: key.NewBinding(key.WithKeys("enter", "ctrl+v")),
	copy:    key.NewBinding(key.WithKeys("c")),
	status:  key.NewBinding(key.WithKeys("s")),
	info:    key.NewBinding(key.WithKeys("v")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
