package theme

import (
	"strings"
)

// NavigationItem is one focus target shown in the navigation bar.
type NavigationItem struct {
	Label    string
	Active   bool
	Disabled bool
}

// RenderNavigationBar renders focus targets left to right, highlighting the active one.
func RenderNavigationBar(items []NavigationItem) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, formatNavItem(item))
	}
	return strings.Join(parts, TextDimStyle.Render(" "+BorderVert+" "))
}

func formatNavItem(item NavigationItem) string {
	switch {
	case item.Active:
		return SelectionStyle.Render(" " + item.Label + " ")
	case item.Disabled:
		return TextDimStyle.Copy().Faint(true).Render(" " + item.Label + " ")
	default:
		return TextStyle.Render(" " + item.Label + " ")
	}
}
