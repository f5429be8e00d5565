package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#00F2FE")
	alertFg   = lipgloss.Color("#FF6B6B")
	borderCol = lipgloss.Color("#404B69")

	appStyle        = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	alertStyle      = boxStyle.BorderForeground(alertFg).MaxWidth(60)
	alertTitleStyle = lipgloss.NewStyle().Foreground(alertFg).Bold(true)
	titleStyle      = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(baseDimFg)
)
