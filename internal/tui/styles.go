package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ebeef5"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#969bAA"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#464a58"))

	statusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7fc8e8"))

	statusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fdb813"))
)
