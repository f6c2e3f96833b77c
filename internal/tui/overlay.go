package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayLeft draws panel over the left edge of base. Both are clipped to
// width x height; rows of base not covered by panel are kept as they are.
func overlayLeft(base, panel string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := canvasLines(base, height)
	panelRows := strings.Split(panel, "\n")
	panelWidth := 0
	for _, line := range panelRows {
		panelWidth = max(panelWidth, ansi.StringWidth(line))
	}
	panelWidth = min(panelWidth, width)

	for i := range rows {
		row := padRight(rows[i], width)
		if i >= len(panelRows) {
			rows[i] = row
			continue
		}
		left := padRight(panelRows[i], panelWidth)
		rows[i] = left + dropColumns(row, panelWidth)
	}
	return strings.Join(rows, "\n")
}

func canvasLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// clipHeight keeps at most height lines of s.
func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
