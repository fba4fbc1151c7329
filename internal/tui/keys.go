package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFilter key.Binding
	All        key.Binding
	Active     key.Binding
	Completed  key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		All:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Dismiss:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.NextFilter, k.Dismiss}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.NextFilter, k.All, k.Active, k.Completed, k.Dismiss}
}
