package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modernapp/internal/nav"
)

// renderPage maps the active page to its panel. Anything unrecognised,
// including the empty page, shows Home.
func (a *App) renderPage(p nav.Page) string {
	if !p.Known() {
		p = nav.PageHome
	}
	switch p {
	case nav.PageLogin:
		return a.login.view(a.nav.Message())
	case nav.PageSuccess:
		return renderSuccess()
	case nav.PageGrid:
		return a.renderGrid()
	default:
		return renderHome()
	}
}

type feature struct {
	icon, title, description string
}

var homeFeatures = []feature{
	{"⚑", "Intuitive Design", "Enjoy a sleek and user-friendly interface designed for optimal experience."},
	{"▣", "Powerful Features", "Unlock a suite of advanced tools tailored to boost your productivity."},
	{"?", "Dedicated Support", "Our team is here to assist you with any questions or challenges you face."},
}

func renderHome() string {
	cards := make([]string, 0, len(homeFeatures))
	for _, f := range homeFeatures {
		body := lipgloss.JoinVertical(lipgloss.Center,
			cardTitleStyle.Render(f.icon),
			headingStyle.Render(f.title),
			lipgloss.NewStyle().Width(gridCardWide-4).Align(lipgloss.Center).Foreground(colorMuted).Render(f.description),
		)
		cards = append(cards, cardStyle.Width(gridCardWide).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("Discover Our Features"),
		subtitleStyle.Render("Explore what our powerful application can do for you."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		actionStyle.Render("Get Started Now!"),
		mutedStyle.Render("press enter"),
	)
}

func renderSuccess() string {
	lines := []string{
		okMessageStyle.Render("✔"),
		headingStyle.Render("Login Successful!"),
		mutedStyle.Render("Welcome to your personalized dashboard."),
		"",
		actionStyle.Render("OK"),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (a *App) renderTopBar(width int) string {
	s := a.nav.State()
	bg := lipgloss.NewStyle().Background(colorSurface0)

	left := []string{bg.Render(" ")}
	if s.HamburgerVisible() {
		left = append(left, titleStyle.Render("☰"), bg.Render(" "))
	}
	left = append(left, titleStyle.Render(a.cfg.UI.Title))

	var right []string
	switch {
	case s.LogoutVisible():
		if s.Session.Email != "" {
			right = append(right, mutedStyle.Background(colorSurface0).Render(s.Session.Email), bg.Render(" "))
		}
		right = append(right, logoutButtonStyle.Render("Logout"))
	case s.LoginVisible():
		right = append(right, loginButtonStyle.Render("Login"))
	}
	right = append(right, bg.Render(" "))

	l := strings.Join(left, "")
	r := strings.Join(right, "")
	gap := max(1, width-lipgloss.Width(l)-lipgloss.Width(r))
	return topBarStyle.Width(width).MaxWidth(width).Render(l + bg.Render(strings.Repeat(" ", gap)) + r)
}

const sidePanelWidth = 30

func (a *App) renderSidePanel(height int) string {
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			panelTitleStyle.Width(sidePanelWidth-8).Render("Menu"),
			mutedStyle.Background(colorPanel).Render("esc ✕"),
		),
		"",
		panelSelectedStyle.Width(sidePanelWidth - 4).Render("▦ View Grid Items"),
	}
	return panelStyle.
		Width(sidePanelWidth).
		Height(max(1, height)).
		MaxHeight(max(1, height)).
		Render(strings.Join(lines, "\n"))
}
