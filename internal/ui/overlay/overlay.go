// Package overlay draws dialogs and toasts on top of an already rendered view
// without disturbing the ANSI styling of either layer.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the viewport.
	Center Position = iota
	// Top places the overlay at the top, centered horizontally.
	Top
	// Bottom places the overlay at the bottom, centered horizontally.
	Bottom
)

// Config controls overlay placement.
type Config struct {
	Width    int      // Viewport width
	Height   int      // Viewport height; the background is padded up to it
	Position Position // Anchor of the foreground block
	PadY     int      // Rows kept free from the top or bottom edge (Top/Bottom only)
}

// Place renders fg over bg and returns the combined view.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bg starting at column x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fg)
	var right string
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

// origin returns the top-left cell of the foreground block, never negative.
func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
