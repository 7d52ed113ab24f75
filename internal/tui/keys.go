package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	search    key.Binding
	refresh   key.Binding
	browse    key.Binding
	profile   key.Binding
	admin     key.Binding
	newPost   key.Binding
	login     key.Binding
	register  key.Binding
	logout    key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	export    key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
	submit    key.Binding
	saveDraft key.Binding
	toggle    key.Binding
	featured  key.Binding
	otherForm key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:    key.NewBinding(key.WithKeys("/")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	browse:    key.NewBinding(key.WithKeys("b")),
	profile:   key.NewBinding(key.WithKeys("p")),
	admin:     key.NewBinding(key.WithKeys("a")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	login:     key.NewBinding(key.WithKeys("L")),
	register:  key.NewBinding(key.WithKeys("R")),
	logout:    key.NewBinding(key.WithKeys("o")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	export:    key.NewBinding(key.WithKeys("x")),
	about:     key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	saveDraft: key.NewBinding(key.WithKeys("ctrl+d")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+t")),
	featured:  key.NewBinding(key.WithKeys("ctrl+f")),
	otherForm: key.NewBinding(key.WithKeys("ctrl+o")),
}
