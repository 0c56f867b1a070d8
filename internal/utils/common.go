package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Text helpers shared by the views. Widths are terminal cells, not bytes.

// TruncateString shortens s to maxWidth cells, ending in "..." when cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// DisplayWidth is the rendered width of s, ignoring ANSI styling.
func DisplayWidth(s string) int {
	return lipgloss.Width(s)
}

// WrapText breaks text into lines of at most width cells on word boundaries.
// Runs of whitespace collapse to one space. Words longer than width are kept
// whole on their own line.
func WrapText(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if width <= 0 || text == "" {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
