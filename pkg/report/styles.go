package report

import "github.com/charmbracelet/lipgloss"

var (
	keptColor    = lipgloss.Color("#228B22")
	removedColor = lipgloss.Color("#CC3333")
	infoColor    = lipgloss.Color("#4682B4")
	mutedColor   = lipgloss.Color("#888888")
	warningColor = lipgloss.Color("#FF8800")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(infoColor).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	keptStyle    = lipgloss.NewStyle().Foreground(keptColor).Bold(true)
	removedStyle = lipgloss.NewStyle().Foreground(removedColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)

	diffAddStyle    = lipgloss.NewStyle().Foreground(keptColor)
	diffRemoveStyle = lipgloss.NewStyle().Foreground(removedColor)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(infoColor)
)
