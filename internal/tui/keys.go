package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	merge   key.Binding
	replace key.Binding
	safe    key.Binding
	unset   key.Binding
	tab     key.Binding
	copy    key.Binding
	write   key.Binding
	quit    key.Binding
	abort   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	merge:   key.NewBinding(key.WithKeys("m")),
	replace: key.NewBinding(key.WithKeys("r")),
	safe:    key.NewBinding(key.WithKeys("s")),
	unset:   key.NewBinding(key.WithKeys("u")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	copy:    key.NewBinding(key.WithKeys("c")),
	write:   key.NewBinding(key.WithKeys("w")),
	quit:    key.NewBinding(key.WithKeys("q")),
	abort:   key.NewBinding(key.WithKeys("ctrl+c")),
}
