package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes name the key contexts. The side panel scope wins while the panel
// is drawn; otherwise the active page decides.
const (
	scopePanel      = "panel"
	scopeHome       = "page:home"
	scopeLogin      = "page:login"
	scopeSuccess    = "page:success"
	scopeGrid       = "page:grid"
	scopeGridFilter = "grid:filter"
)

const (
	actQuit        = "quit"
	actHome        = "home"
	actLogin       = "login"
	actLogout      = "logout"
	actTogglePanel = "toggle_panel"
	actGetStarted  = "get_started"
	actSubmit      = "submit"
	actNextField   = "next_field"
	actPrevField   = "prev_field"
	actBack        = "back"
	actConfirm     = "confirm"
	actFilter      = "filter"
	actClearFilter = "clear_filter"
	actApplyFilter = "apply_filter"
	actPanelGrid   = "panel_grid"
	actPanelClose  = "panel_close"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the action bound to the pressed key in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// browsing scopes have no focused text input, so single letters are free
var browsing = []string{scopeHome, scopeSuccess, scopeGrid}

// DefaultBindings is the key map used by New.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: actQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: actQuit, Description: "quit", Scopes: append([]string{scopePanel}, browsing...)},

		{Keys: []string{"enter"}, Action: actPanelGrid, Description: "view grid items", Scopes: []string{scopePanel}},
		{Keys: []string{"esc", "m"}, Action: actPanelClose, Description: "close menu", Scopes: []string{scopePanel}},

		{Keys: []string{"m"}, Action: actTogglePanel, Description: "menu", Scopes: browsing},
		{Keys: []string{"h"}, Action: actHome, Description: "home", Scopes: browsing},
		{Keys: []string{"l"}, Action: actLogin, Description: "login", Scopes: browsing},
		{Keys: []string{"o"}, Action: actLogout, Description: "logout", Scopes: browsing},

		{Keys: []string{"enter"}, Action: actGetStarted, Description: "get started", Scopes: []string{scopeHome}},

		{Keys: []string{"enter"}, Action: actSubmit, Description: "sign in", Scopes: []string{scopeLogin}},
		{Keys: []string{"tab", "down"}, Action: actNextField, Description: "next field", Scopes: []string{scopeLogin}},
		{Keys: []string{"shift+tab", "up"}, Action: actPrevField, Description: "prev field", Scopes: []string{scopeLogin}},
		{Keys: []string{"esc"}, Action: actBack, Description: "back to home", Scopes: []string{scopeLogin}},

		{Keys: []string{"enter"}, Action: actConfirm, Description: "ok", Scopes: []string{scopeSuccess}},

		{Keys: []string{"/"}, Action: actFilter, Description: "filter", Scopes: []string{scopeGrid}},
		{Keys: []string{"esc"}, Action: actClearFilter, Description: "clear filter", Scopes: []string{scopeGrid, scopeGridFilter}},
		{Keys: []string{"enter"}, Action: actApplyFilter, Description: "apply", Scopes: []string{scopeGridFilter}},
	}
}
