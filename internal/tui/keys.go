package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	mood      key.Binding
	quests    key.Binding
	forum     key.Binding
	ally      key.Binding
	burnout   key.Binding
	reminders key.Binding
	newItem   key.Binding
	refresh   key.Binding
	history   key.Binding
	topic     key.Binding
	toggle    key.Binding
	delete    key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	mood:      key.NewBinding(key.WithKeys("m")),
	quests:    key.NewBinding(key.WithKeys("q")),
	forum:     key.NewBinding(key.WithKeys("f")),
	ally:      key.NewBinding(key.WithKeys("a")),
	burnout:   key.NewBinding(key.WithKeys("b")),
	reminders: key.NewBinding(key.WithKeys("r")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("u")),
	history:   key.NewBinding(key.WithKeys("h")),
	topic:     key.NewBinding(key.WithKeys("t")),
	toggle:    key.NewBinding(key.WithKeys(" ", "t")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
