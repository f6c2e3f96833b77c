package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/modernapp/internal/auth"
	"github.com/jask/modernapp/internal/config"
	"github.com/jask/modernapp/internal/database/repository"
	"github.com/jask/modernapp/internal/delay"
	"github.com/jask/modernapp/internal/nav"
)

// CatalogSource supplies the grid items.
type CatalogSource interface {
	List(ctx context.Context) ([]repository.CatalogItem, error)
}

// Deps are the collaborators the App is built from.
type Deps struct {
	Nav     *nav.Controller
	Catalog CatalogSource
	Keys    *KeyRegistry
	Logger  *zap.Logger
}

// App is the root model. It owns the navigation controller and is the only
// place that applies transitions.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     config.Config
	nav     *nav.Controller
	catalog CatalogSource
	keys    *KeyRegistry
	log     *zap.Logger

	login login
	grid  grid
	items []repository.CatalogItem

	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	ctx, cancel := context.WithCancel(ctx)
	if deps.Keys == nil {
		deps.Keys = NewKeyRegistry(DefaultBindings())
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Nav == nil {
		deps.Nav = nav.NewController(auth.NewGate())
	}
	if strings.TrimSpace(cfg.UI.Title) == "" {
		cfg.UI.Title = config.DefaultTitle
	}
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		nav:     deps.Nav,
		catalog: deps.Catalog,
		keys:    deps.Keys,
		log:     deps.Logger,
		login:   newLogin(),
		grid:    newGrid(),
		width:   100,
		height:  32,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

func (a *App) loadCatalog() tea.Cmd {
	if a.catalog == nil {
		return nil
	}
	return func() tea.Msg {
		items, err := a.catalog.List(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load catalog: %w", err)}
		}
		return catalogMsg(items)
	}
}

// waitForLogin blocks on the sign-in timer off the UI goroutine and reports
// back with a loginDoneMsg.
func waitForLogin(task *delay.Task) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{task: task, err: task.Wait()}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case catalogMsg:
		a.items = []repository.CatalogItem(m)
		a.log.Debug("catalog loaded", zap.Int("items", len(a.items)))
		return a, nil
	case loginDoneMsg:
		if m.err != nil {
			a.nav.AbortLogin(m.task, m.err)
			return a, nil
		}
		if a.nav.FinishLogin(m.task) {
			a.setStatus("Signed in as " + a.nav.State().Session.Email)
		}
		return a, nil
	case errMsg:
		a.setError(m.error)
		a.log.Error("ui error", zap.Error(m.error))
		return a, nil
	}
	// cursor blink and other input housekeeping
	return a, a.forwardToInputs(msg)
}

func (a *App) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch a.activeScope() {
	case scopeLogin:
		return a.login.update(msg)
	case scopeGridFilter:
		return a.grid.update(msg)
	}
	return nil
}

// activeScope picks the key context: the side panel first, then the page.
func (a *App) activeScope() string {
	s := a.nav.State()
	if s.PanelVisible() {
		return scopePanel
	}
	page := s.Page
	if !page.Known() {
		page = nav.PageHome
	}
	switch page {
	case nav.PageLogin:
		return scopeLogin
	case nav.PageSuccess:
		return scopeSuccess
	case nav.PageGrid:
		if a.grid.editing {
			return scopeGridFilter
		}
		return scopeGrid
	}
	return scopeHome
}

// actionEnabled hides top bar actions whose control is not drawn.
func (a *App) actionEnabled(action string) bool {
	s := a.nav.State()
	switch action {
	case actLogin:
		return s.LoginVisible()
	case actLogout:
		return s.LogoutVisible()
	case actTogglePanel:
		return s.HamburgerVisible()
	case actClearFilter:
		return a.grid.editing || a.grid.query() != ""
	}
	return true
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.activeScope()
	action := a.keys.Action(m, scope)
	if action == "" || !a.actionEnabled(action) {
		return a, a.forwardToInputs(m)
	}

	switch action {
	case actQuit:
		a.nav.CancelPending()
		a.cancel()
		return a, tea.Quit

	case actPanelGrid:
		a.nav.SelectGridFromPanel()
		a.setStatus("Viewing grid items")
	case actPanelClose:
		a.nav.ClosePanel()

	case actTogglePanel:
		a.nav.TogglePanel()
	case actHome:
		a.nav.GoToHome()
	case actLogin, actGetStarted:
		return a, a.enterLogin()
	case actLogout:
		a.nav.Logout()
		a.setStatus("Signed out")

	case actSubmit:
		return a, a.submitLogin()
	case actNextField:
		return a, a.login.focusNext(1)
	case actPrevField:
		return a, a.login.focusNext(-1)
	case actBack:
		// the form's back link signs out as well
		a.nav.Logout()

	case actConfirm:
		a.nav.ConfirmSuccess()

	case actFilter:
		return a, a.grid.startFilter()
	case actApplyFilter:
		a.grid.stopEditing()
	case actClearFilter:
		a.grid.clearFilter()
	}
	return a, nil
}

func (a *App) enterLogin() tea.Cmd {
	a.nav.GoToLogin()
	a.setStatus("")
	return a.login.reset()
}

func (a *App) submitLogin() tea.Cmd {
	email, password := a.login.values()
	task, err := a.nav.SubmitCredentials(a.ctx, email, password)
	if errors.Is(err, nav.ErrLoginPending) {
		a.setStatus("Signing in...")
		return nil
	}
	if err != nil {
		// rejected; the form shows the controller's message
		return nil
	}
	a.setStatus("Signing in...")
	return waitForLogin(task)
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

func (a *App) View() string {
	width, height := max(1, a.width), max(4, a.height)
	top := a.renderTopBar(width)
	status := a.renderStatusBar()
	footer := a.renderFooter()

	bodyHeight := max(1, height-lipgloss.Height(top)-2)
	body := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Top, a.renderPage(a.nav.State().Page))
	body = clipHeight(body, bodyHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left, top, body, status, footer)
	if a.nav.State().PanelVisible() {
		screen = overlayLeft(screen, a.renderSidePanel(height), width, height)
	}
	return screen
}

// messages
type catalogMsg []repository.CatalogItem

type loginDoneMsg struct {
	task *delay.Task
	err  error
}

type errMsg struct{ error }
