package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modernapp/internal/auth"
)

const formWidth = 36

// login is the sign-in form: two inputs and a focus index.
type login struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func newLogin() login {
	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = auth.DemoEmail
	email.CharLimit = 254
	email.Width = formWidth - 4

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = auth.DemoPassword
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = formWidth - 4

	l := login{email: email, password: password}
	l.reset()
	return l
}

// reset clears both fields and focuses the email input.
func (l *login) reset() tea.Cmd {
	l.email.Reset()
	l.password.Reset()
	l.password.Blur()
	l.focus = 0
	return l.email.Focus()
}

func (l *login) focusNext(dir int) tea.Cmd {
	l.focus = (l.focus + dir + 2) % 2
	if l.focus == 0 {
		l.password.Blur()
		return l.email.Focus()
	}
	l.email.Blur()
	return l.password.Focus()
}

func (l login) values() (email, password string) {
	return l.email.Value(), l.password.Value()
}

func (l *login) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if l.focus == 0 {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return cmd
}

func (l login) view(message string) string {
	field := func(label string, in textinput.Model, focused bool) string {
		border := colorBorder
		if focused {
			border = colorAccent
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Width(formWidth - 2).
			Render(in.View())
		return mutedStyle.Render(label) + "\n" + box
	}

	lines := []string{
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, headingStyle.Render("Login")),
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, mutedStyle.Render("Enter your credentials to continue.")),
		"",
		field("Email", l.email, l.focus == 0),
		field("Password", l.password, l.focus == 1),
		"",
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, actionStyle.Render("Sign In")),
	}
	if message != "" {
		style := errMessageStyle
		if message == auth.MsgSuccess {
			style = okMessageStyle
		}
		lines = append(lines, "", lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, style.Render(message)))
	}
	lines = append(lines, "", lipgloss.PlaceHorizontal(formWidth, lipgloss.Center, mutedStyle.Render("esc  Back to Home")))
	return cardStyle.Render(strings.Join(lines, "\n"))
}
