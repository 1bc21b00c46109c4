package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/csheth/wiki/internal/sections"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Jump     key.Binding
	Sidebar  key.Binding
	Close    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn/f", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Prev:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev section")),
		Next:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next section")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "jump")),
		Sidebar:  key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("s", "contents")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close contents")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Sidebar, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Prev, k.Next},
		{k.Jump, k.Sidebar, k.Close, k.Theme},
		{k.Help, k.Quit},
	}
}

// jumpTarget maps a digit key onto the section at that position.
func jumpTarget(s string) (sections.ID, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return "", false
	}
	idx := int(s[0] - '1')
	all := sections.All()
	if idx >= len(all) {
		return "", false
	}
	return all[idx], true
}
