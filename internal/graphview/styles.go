package graphview

import "github.com/charmbracelet/lipgloss"

var (
	textColor   = lipgloss.Color("#CCCCCC")
	mutedColor  = lipgloss.Color("#888888")
	infoColor   = lipgloss.Color("#4682B4")
	goodColor   = lipgloss.Color("#228B22")
	borderColor = lipgloss.Color("#666666")
)

var (
	textStyle   = lipgloss.NewStyle().Foreground(textColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	infoStyle   = lipgloss.NewStyle().Foreground(infoColor)
	classStyle  = lipgloss.NewStyle().Foreground(goodColor).Bold(true)
	headerStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#1a1a1a")).
			Bold(true).
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)
