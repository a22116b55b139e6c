package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Submit   key.Binding
	Download key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "choose")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
		Submit:   key.NewBinding(key.WithKeys("enter")),
		Download: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "download")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Left, k.Select, k.Download, k.Quit}
}
