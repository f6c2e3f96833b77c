// Package nav holds the navigation state machine: which page is active,
// whether the session is signed in and whether the side panel is open.
//
// State is a plain value. Every transition returns the next State and never
// mutates the receiver; Controller is the single owner that applies them.
package nav

import "time"

// Page identifies the active view.
type Page string

const (
	PageHome    Page = "home"
	PageLogin   Page = "login"
	PageSuccess Page = "success"
	PageGrid    Page = "grid"
)

// Known reports whether p is one of the four pages.
func (p Page) Known() bool {
	switch p {
	case PageHome, PageLogin, PageSuccess, PageGrid:
		return true
	}
	return false
}

// Session is the in-memory record of the simulated sign-in.
type Session struct {
	Authenticated bool
	ID            string
	Email         string
	Since         time.Time
}

// State is the full navigation state.
type State struct {
	Session   Session
	Page      Page
	PanelOpen bool
}

// Initial is the state at startup: home page, signed out, panel closed.
func Initial() State {
	return State{Page: PageHome}
}

func (s State) GoToLogin() State {
	s.Page = PageLogin
	s.PanelOpen = false
	return s
}

// CompleteLogin marks the session authenticated and shows the success page.
func (s State) CompleteLogin(sess Session) State {
	sess.Authenticated = true
	s.Session = sess
	s.Page = PageSuccess
	return s
}

// ConfirmSuccess opens the side panel and returns home.
func (s State) ConfirmSuccess() State {
	s.PanelOpen = true
	s.Page = PageHome
	return s
}

// Logout signs out, returns home and closes the panel.
func (s State) Logout() State {
	s.Session = Session{}
	s.Page = PageHome
	s.PanelOpen = false
	return s
}

// OpenGrid shows the grid. The panel is left as is; the side panel closes
// itself after calling this.
func (s State) OpenGrid() State {
	s.Page = PageGrid
	return s
}

// GoToHome shows the home page and keeps the panel state.
func (s State) GoToHome() State {
	s.Page = PageHome
	return s
}

func (s State) TogglePanel() State {
	s.PanelOpen = !s.PanelOpen
	return s
}

func (s State) ClosePanel() State {
	s.PanelOpen = false
	return s
}

// Authenticated is shorthand for s.Session.Authenticated.
func (s State) Authenticated() bool { return s.Session.Authenticated }

// HamburgerVisible reports whether the top bar offers the panel toggle.
func (s State) HamburgerVisible() bool {
	return s.Authenticated() && (s.Page == PageHome || s.Page == PageGrid)
}

// LoginVisible reports whether the top bar offers the sign-in action.
func (s State) LoginVisible() bool {
	return !s.Authenticated() && s.Page != PageLogin
}

// LogoutVisible reports whether the top bar offers the sign-out action.
func (s State) LogoutVisible() bool {
	return s.Authenticated()
}

// PanelVisible reports whether the side panel is drawn. An open panel stays
// hidden while signed out.
func (s State) PanelVisible() bool {
	return s.Authenticated() && s.PanelOpen
}
