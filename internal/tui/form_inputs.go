package tui

import "github.com/charmbracelet/bubbles/textinput"

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// moveFocus blurs inputs[from], focuses the input delta steps away
// (wrapping) and returns its index.
func moveFocus(inputs []textinput.Model, from, delta int) int {
	if len(inputs) == 0 {
		return 0
	}
	inputs[from].Blur()
	to := (from + delta + len(inputs)) % len(inputs)
	inputs[to].Focus()
	return to
}

func checkbox(label string, checked bool) string {
	if checked {
		return "[x] " + label
	}
	return "[ ] " + label
}
