package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#0ea5a4")
	muted  = lipgloss.Color("#6b7280")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	selectedStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	featureStyle  = lipgloss.NewStyle().Foreground(accent).Padding(0, 1)
	menuStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	placeholder   = lipgloss.NewStyle().Foreground(muted).Italic(true)
	labelStyle    = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	modalBox      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
)
