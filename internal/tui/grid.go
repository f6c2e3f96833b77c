package tui

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modernapp/internal/database/repository"
)

const (
	gridColumns  = 3
	gridCardWide = 30
	// fuzzy matching only kicks in for queries at least this long
	fuzzyMinLen  = 4
	fuzzyMaxDist = 2
)

// grid holds the filter state of the grid page.
type grid struct {
	filter  textinput.Model
	editing bool
}

func newGrid() grid {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "filter items"
	in.CharLimit = 64
	in.Width = 24
	return grid{filter: in}
}

func (g *grid) startFilter() tea.Cmd {
	g.editing = true
	return g.filter.Focus()
}

func (g *grid) stopEditing() {
	g.editing = false
	g.filter.Blur()
}

func (g *grid) clearFilter() {
	g.filter.Reset()
	g.stopEditing()
}

func (g grid) query() string {
	return strings.TrimSpace(g.filter.Value())
}

func (g *grid) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.filter, cmd = g.filter.Update(msg)
	return cmd
}

// filterItems keeps catalog order and returns the items matching query.
func filterItems(items []repository.CatalogItem, query string) []repository.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []repository.CatalogItem
	for _, it := range items {
		if itemMatches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func itemMatches(it repository.CatalogItem, q string) bool {
	name := strings.ToLower(it.Name)
	if strings.Contains(name, q) || strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	if len([]rune(q)) < fuzzyMinLen {
		return false
	}
	for _, word := range strings.Fields(name) {
		if levenshtein.ComputeDistance(word, q) <= fuzzyMaxDist {
			return true
		}
	}
	return false
}

func (a *App) renderGrid() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("Explore Our Collection"),
		subtitleStyle.Render("A showcase of various items available."),
	)

	var filterLine string
	switch {
	case a.grid.editing:
		filterLine = a.grid.filter.View()
	case a.grid.query() != "":
		filterLine = mutedStyle.Render(fmt.Sprintf("filter: %q", a.grid.query()))
	}

	if a.items == nil {
		return lipgloss.JoinVertical(lipgloss.Center, header, "", mutedStyle.Render("Loading catalog..."))
	}
	items := filterItems(a.items, a.grid.query())
	if len(items) == 0 {
		body := mutedStyle.Render(fmt.Sprintf("No items match %q.", a.grid.query()))
		return lipgloss.JoinVertical(lipgloss.Center, header, filterLine, "", body)
	}

	var rows []string
	for start := 0; start < len(items); start += gridColumns {
		end := min(start+gridColumns, len(items))
		cards := make([]string, 0, gridColumns)
		for _, it := range items[start:end] {
			cards = append(cards, renderItemCard(it))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	parts := []string{header}
	if filterLine != "" {
		parts = append(parts, filterLine)
	}
	parts = append(parts, "")
	parts = append(parts, rows...)
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func renderItemCard(it repository.CatalogItem) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(it.Name),
		lipgloss.NewStyle().Width(gridCardWide-4).Align(lipgloss.Center).Render(it.Description),
		mutedStyle.Render(lipgloss.NewStyle().Width(gridCardWide-4).Align(lipgloss.Center).Render(it.ImageRef())),
	)
	return cardStyle.Width(gridCardWide).Render(body)
}
