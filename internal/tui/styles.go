package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1F2937"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D1D5DB")).
			Padding(0, 2)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9CA3AF")).
				Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 2)

	sliderFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	sliderEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563"))

	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#059669"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))

	appStyle = lipgloss.NewStyle().Padding(1, 2)
)
