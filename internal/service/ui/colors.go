package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (cyan) reads well on light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// UsageStyle ANSI 2 (green) for usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (gray) keeps descriptions quieter than names
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (yellow)
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
