package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmLogout
	confirmDelete
	confirmLoadDraft
	confirmCancelEdit
)

type confirmModel struct {
	message   string
	action    confirmAction
	articleID int64
	origin    screen
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
