package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/modernapp/internal/auth"
	"github.com/jask/modernapp/internal/config"
	"github.com/jask/modernapp/internal/database"
	"github.com/jask/modernapp/internal/database/repository"
	"github.com/jask/modernapp/internal/delay"
	"github.com/jask/modernapp/internal/nav"
)

type fakeCatalog struct {
	items []repository.CatalogItem
	err   error
}

func (f fakeCatalog) List(context.Context) ([]repository.CatalogItem, error) {
	return f.items, f.err
}

func newTestApp(t *testing.T, opts ...nav.Option) *App {
	t.Helper()
	base := []nav.Option{nav.WithDelay(time.Millisecond)}
	ctrl := nav.NewController(auth.NewGate(), append(base, opts...)...)
	cfg := config.Config{UI: config.UIConfig{Title: config.DefaultTitle}}
	a := New(context.Background(), cfg, Deps{Nav: ctrl, Catalog: fakeCatalog{items: database.DefaultCatalog}})
	t.Cleanup(a.cancel)

	msg := a.Init()()
	a.Update(msg)
	return a
}

func signedIn(page nav.Page, panel bool) nav.State {
	return nav.State{
		Session:   nav.Session{Authenticated: true, ID: "s-1", Email: auth.DemoEmail},
		Page:      page,
		PanelOpen: panel,
	}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func submit(t *testing.T, a *App, email, password string) tea.Cmd {
	t.Helper()
	typeText(a, email)
	press(a, "tab")
	typeText(a, password)
	return press(a, "enter")
}

func TestStartsOnHome(t *testing.T) {
	a := newTestApp(t)
	view := a.View()
	require.Contains(t, view, "My Modern App")
	require.Contains(t, view, "Discover Our Features")
	require.Contains(t, view, "Login")
	require.NotContains(t, view, "Logout")
	require.NotContains(t, view, "☰")
}

func TestUnknownPageRendersHome(t *testing.T) {
	for _, p := range []nav.Page{"", "bogus"} {
		a := newTestApp(t, nav.WithState(nav.State{Page: p}))
		require.Contains(t, a.renderPage(p), "Discover Our Features", "page %q", p)
		require.Contains(t, a.View(), "Get Started Now!", "page %q", p)
		require.Equal(t, scopeHome, a.activeScope())
	}
}

func TestLoginSuccessFlow(t *testing.T) {
	a := newTestApp(t)

	press(a, "l")
	require.Equal(t, nav.PageLogin, a.nav.State().Page)
	require.Contains(t, a.View(), "Enter your credentials to continue.")

	cmd := submit(t, a, auth.DemoEmail, auth.DemoPassword)
	require.NotNil(t, cmd)
	require.Equal(t, nav.PageLogin, a.nav.State().Page)
	require.False(t, a.nav.State().Authenticated())
	require.Contains(t, a.View(), auth.MsgSuccess)

	msg := cmd()
	done, ok := msg.(loginDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	a.Update(msg)

	s := a.nav.State()
	require.True(t, s.Authenticated())
	require.Equal(t, nav.PageSuccess, s.Page)
	view := a.View()
	require.Contains(t, view, "Login Successful!")
	require.Contains(t, view, "Logout")
	require.Contains(t, view, auth.DemoEmail)

	press(a, "enter")
	s = a.nav.State()
	require.Equal(t, nav.PageHome, s.Page)
	require.True(t, s.PanelOpen)
	require.Contains(t, a.View(), "View Grid Items")

	press(a, "enter")
	s = a.nav.State()
	require.Equal(t, nav.PageGrid, s.Page)
	require.False(t, s.PanelOpen)
	view = a.View()
	require.Contains(t, view, "Explore Our Collection")
	require.Contains(t, view, "Product A")
	require.Contains(t, view, "Software F")
	require.NotContains(t, view, "View Grid Items")
}

func TestLoginWrongPassword(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter") // get started

	require.Equal(t, nav.PageLogin, a.nav.State().Page)
	cmd := submit(t, a, auth.DemoEmail, "letmein")
	require.Nil(t, cmd)

	s := a.nav.State()
	require.Equal(t, nav.PageLogin, s.Page)
	require.False(t, s.Authenticated())
	require.Equal(t, auth.MsgInvalid, a.nav.Message())
	require.Contains(t, a.View(), auth.MsgInvalid)
}

func TestLoginTypingDoesNotTriggerShortcuts(t *testing.T) {
	a := newTestApp(t)
	press(a, "l")
	typeText(a, "qhlom/")
	require.Equal(t, nav.PageLogin, a.nav.State().Page)
	email, _ := a.login.values()
	require.Equal(t, "qhlom/", email)
}

func TestLoginFormResetsOnEntry(t *testing.T) {
	a := newTestApp(t)
	press(a, "l")
	submit(t, a, "someone@example.com", "nope")
	require.NotEmpty(t, a.nav.Message())

	press(a, "esc")
	press(a, "l")
	email, password := a.login.values()
	require.Empty(t, email)
	require.Empty(t, password)
	require.Empty(t, a.nav.Message())
}

func TestBackToHomeSignsOut(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageLogin, false)))
	press(a, "esc")
	s := a.nav.State()
	require.Equal(t, nav.PageHome, s.Page)
	require.False(t, s.Authenticated())
}

func TestHamburgerVisibility(t *testing.T) {
	a := newTestApp(t)
	press(a, "m")
	require.False(t, a.nav.State().PanelOpen, "signed out users have no menu")

	a = newTestApp(t, nav.WithState(signedIn(nav.PageSuccess, false)))
	require.NotContains(t, a.View(), "☰")
	press(a, "m")
	require.False(t, a.nav.State().PanelOpen, "no menu on the success page")

	a = newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))
	require.Contains(t, a.View(), "☰")
	press(a, "m")
	require.True(t, a.nav.State().PanelOpen)
}

func TestPanelCapturesKeys(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageHome, true)))
	require.Equal(t, scopePanel, a.activeScope())

	press(a, "o")
	require.True(t, a.nav.State().Authenticated(), "top bar is behind the panel")
	press(a, "l")
	require.Equal(t, nav.PageHome, a.nav.State().Page)

	press(a, "esc")
	require.False(t, a.nav.State().PanelOpen)
	require.Equal(t, nav.PageHome, a.nav.State().Page)
}

func TestPanelHiddenWhenSignedOut(t *testing.T) {
	a := newTestApp(t, nav.WithState(nav.State{Page: nav.PageHome, PanelOpen: true}))
	require.NotContains(t, a.View(), "View Grid Items")
	require.Equal(t, scopeHome, a.activeScope())
}

func TestTitleGoesHome(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))
	press(a, "m")
	press(a, "esc")
	press(a, "h")
	s := a.nav.State()
	require.Equal(t, nav.PageHome, s.Page)
	require.False(t, s.PanelOpen)
}

func TestLogoutFromGrid(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))
	press(a, "o")
	s := a.nav.State()
	require.Equal(t, nav.PageHome, s.Page)
	require.False(t, s.Authenticated())
	require.False(t, s.PanelOpen)
	require.Contains(t, a.View(), "Signed out")
}

func TestGridFilter(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))

	press(a, "/")
	require.Equal(t, scopeGridFilter, a.activeScope())
	typeText(a, "gadjet")
	press(a, "enter")
	require.Equal(t, scopeGrid, a.activeScope())

	view := a.View()
	require.Contains(t, view, "Gadget E")
	require.NotContains(t, view, "Product A")

	press(a, "esc")
	require.Contains(t, a.View(), "Product A")
}

func TestGridFilterNoMatches(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))
	press(a, "/")
	typeText(a, "zzzz")
	require.Contains(t, a.View(), `No items match "zzzz".`)
}

func TestFilterItems(t *testing.T) {
	items := database.DefaultCatalog
	names := func(in []repository.CatalogItem) []string {
		var out []string
		for _, it := range in {
			out = append(out, it.Name)
		}
		return out
	}

	require.Len(t, filterItems(items, ""), 6)
	require.Equal(t, []string{"Service B"}, names(filterItems(items, "servise")))
	require.Equal(t, []string{"Solution C"}, names(filterItems(items, "SOLUTION")))
	require.Equal(t, []string{"Gadget E"}, names(filterItems(items, "technology")))
	require.Empty(t, filterItems(items, "xyz"))
	// short queries never fuzzy match
	require.Empty(t, filterItems(items, "qz"))
}

func TestCatalogLoadError(t *testing.T) {
	ctrl := nav.NewController(auth.NewGate())
	a := New(context.Background(), config.Config{}, Deps{Nav: ctrl, Catalog: fakeCatalog{err: errors.New("disk on fire")}})
	t.Cleanup(a.cancel)
	a.Update(a.Init()())

	require.True(t, a.statusErr)
	require.Contains(t, a.status, "disk on fire")
	require.Contains(t, a.View(), "My Modern App")
}

func TestQuitCancelsPendingLogin(t *testing.T) {
	a := newTestApp(t, nav.WithDelay(time.Hour))
	press(a, "l")
	wait := submit(t, a, auth.DemoEmail, auth.DemoPassword)
	require.NotNil(t, wait)
	require.True(t, a.nav.Pending())

	quit := press(a, "ctrl+c")
	require.NotNil(t, quit)
	_, isQuit := quit().(tea.QuitMsg)
	require.True(t, isQuit)

	msg := wait()
	done := msg.(loginDoneMsg)
	require.ErrorIs(t, done.err, delay.ErrCanceled)
	a.Update(msg)
	require.False(t, a.nav.Pending())
	require.False(t, a.nav.State().Authenticated())
}

func TestResubmitWhilePendingShowsProgress(t *testing.T) {
	a := newTestApp(t, nav.WithDelay(time.Hour))
	press(a, "l")
	wait := submit(t, a, auth.DemoEmail, auth.DemoPassword)
	require.NotNil(t, wait)

	press(a, "esc", "l")
	require.Empty(t, a.nav.Message())

	cmd := press(a, "enter")
	require.Nil(t, cmd)
	require.True(t, a.nav.Pending())
	require.Equal(t, auth.MsgSuccess, a.nav.Message())
	require.Equal(t, "Signing in...", a.status)
	require.Contains(t, a.View(), auth.MsgSuccess)

	a.nav.CancelPending()
	a.Update(wait())
	require.False(t, a.nav.Pending())
}

func TestLoginFooterOffersBackToHome(t *testing.T) {
	a := newTestApp(t)
	press(a, "l")
	footer := a.renderFooter()
	require.Contains(t, footer, "back to home")
	// typing "h" into the form must not navigate; esc is the way home
	require.Empty(t, a.keys.Action(keyMsg("h"), scopeLogin))
}

func TestFooterListsAvailableActions(t *testing.T) {
	a := newTestApp(t)
	footer := a.renderFooter()
	require.Contains(t, footer, "login")
	require.Contains(t, footer, "get started")
	require.NotContains(t, footer, "logout")
	require.NotContains(t, footer, "menu")

	a = newTestApp(t, nav.WithState(signedIn(nav.PageGrid, false)))
	footer = a.renderFooter()
	require.Contains(t, footer, "logout")
	require.Contains(t, footer, "menu")
	require.Contains(t, footer, "filter")
	require.NotContains(t, footer, "clear filter")
}

func TestViewFitsWindow(t *testing.T) {
	a := newTestApp(t, nav.WithState(signedIn(nav.PageHome, true)))
	a.Update(tea.WindowSizeMsg{Width: 110, Height: 30})
	lines := strings.Split(a.View(), "\n")
	require.Len(t, lines, 30)
}
