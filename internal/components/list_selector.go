package components

import (
	"strings"

	"github.com/meddict/meddict-tui/internal/theme"
	"github.com/meddict/meddict-tui/internal/utils"
)

// ListSelector - Reusable single-selection list
type ListSelector struct {
	items  []ListItem
	cursor int

	title       string
	emptyText   string
	showPointer bool

	width      int
	height     int
	startIndex int

	focused bool
}

type ListItem struct {
	Label string
	Value string
	// Suffix is rendered after the label, e.g. a favorite marker.
	Suffix string
}

// NewListSelector creates a new list selector component
func NewListSelector(title string) *ListSelector {
	return &ListSelector{
		title:       title,
		emptyText:   "No items available",
		showPointer: true,
		width:       40,
		height:      10,
	}
}

// ItemsFromStrings builds list items whose label and value are the same.
func ItemsFromStrings(values []string) []ListItem {
	items := make([]ListItem, 0, len(values))
	for _, v := range values {
		items = append(items, ListItem{Label: v, Value: v})
	}
	return items
}

func (ls *ListSelector) SetSize(width, height int) *ListSelector {
	ls.width = width
	ls.height = height
	ls.updateScrollPosition()
	return ls
}

func (ls *ListSelector) SetEmptyText(text string) *ListSelector {
	ls.emptyText = text
	return ls
}

func (ls *ListSelector) SetFocused(focused bool) *ListSelector {
	ls.focused = focused
	return ls
}

// SetItems replaces the items. The cursor stays on the same value when it is
// still present, otherwise it is clamped.
func (ls *ListSelector) SetItems(items []ListItem) *ListSelector {
	current, ok := ls.CurrentItem()
	ls.items = items
	ls.cursor = 0
	if ok {
		for i, item := range items {
			if item.Value == current.Value {
				ls.cursor = i
				break
			}
		}
	}
	ls.updateScrollPosition()
	return ls
}

func (ls *ListSelector) MoveUp() {
	if ls.cursor > 0 {
		ls.cursor--
		ls.updateScrollPosition()
	}
}

func (ls *ListSelector) MoveDown() {
	if ls.cursor < len(ls.items)-1 {
		ls.cursor++
		ls.updateScrollPosition()
	}
}

func (ls *ListSelector) MoveToFirst() {
	ls.cursor = 0
	ls.updateScrollPosition()
}

// CurrentItem returns the highlighted item.
func (ls *ListSelector) CurrentItem() (ListItem, bool) {
	if ls.cursor >= 0 && ls.cursor < len(ls.items) {
		return ls.items[ls.cursor], true
	}
	return ListItem{}, false
}

func (ls *ListSelector) visibleHeight() int {
	h := ls.height
	if ls.title != "" {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (ls *ListSelector) updateScrollPosition() {
	visible := ls.visibleHeight()

	if ls.cursor < ls.startIndex {
		ls.startIndex = ls.cursor
	} else if ls.cursor >= ls.startIndex+visible {
		ls.startIndex = ls.cursor - visible + 1
	}

	maxStart := len(ls.items) - visible
	if maxStart < 0 {
		maxStart = 0
	}
	if ls.startIndex > maxStart {
		ls.startIndex = maxStart
	}
}

// Render the list selector
func (ls *ListSelector) Render() string {
	lines := make([]string, 0, ls.height)

	if ls.title != "" {
		lines = append(lines, theme.HeaderStyle.Render(utils.TruncateString(ls.title, ls.width)))
	}

	if len(ls.items) == 0 {
		lines = append(lines, theme.RenderTextDim(ls.emptyText))
		return strings.Join(lines, "\n")
	}

	endIndex := ls.startIndex + ls.visibleHeight()
	if endIndex > len(ls.items) {
		endIndex = len(ls.items)
	}

	for i := ls.startIndex; i < endIndex; i++ {
		lines = append(lines, ls.renderListItem(ls.items[i], ls.focused && i == ls.cursor))
	}

	return strings.Join(lines, "\n")
}

func (ls *ListSelector) renderListItem(item ListItem, highlighted bool) string {
	prefix := "  "
	if ls.showPointer && highlighted {
		prefix = theme.IconPointer + " "
	}

	suffixWidth := 0
	if item.Suffix != "" {
		suffixWidth = utils.DisplayWidth(item.Suffix) + 1
	}
	label := utils.TruncateString(item.Label, ls.width-utils.DisplayWidth(prefix)-suffixWidth)

	if highlighted {
		content := theme.RenderSelection(prefix+label, 0)
		if item.Suffix != "" {
			content += " " + item.Suffix
		}
		return content
	}

	content := prefix + theme.RenderText(label)
	if item.Suffix != "" {
		content += " " + item.Suffix
	}
	return content
}
