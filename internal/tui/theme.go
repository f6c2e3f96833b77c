package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorIndigo   lipgloss.Color = "#b4befe"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorPanel    lipgloss.Color = "#11111b"
)

var (
	topBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorText)
	titleStyle = lipgloss.NewStyle().
			Foreground(colorIndigo).
			Background(colorSurface0).
			Bold(true)
	loginButtonStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorAccent).
				Bold(true).
				Padding(0, 1)
	logoutButtonStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorError).
				Bold(true).
				Padding(0, 1)

	headingStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorIndigo)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorIndigo).
			Bold(true).
			Padding(0, 2)

	okMessageStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	errMessageStyle = lipgloss.NewStyle().Foreground(colorError)

	panelStyle = lipgloss.NewStyle().
			Background(colorPanel).
			Foreground(colorText).
			Padding(1, 2)
	panelTitleStyle    = lipgloss.NewStyle().Foreground(colorIndigo).Background(colorPanel).Bold(true)
	panelSelectedStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
