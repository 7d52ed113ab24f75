package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	badgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("105")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
)
