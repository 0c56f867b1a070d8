package lookup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meddict/meddict-tui/internal/theme"
	"github.com/meddict/meddict-tui/internal/utils"
)

func (m Model) layoutWidths() (main, side int) {
	width := utils.Max(m.width, minWidth)
	if width < sideBySideMinWidth {
		return width, width
	}
	side = width / favoritesPanelRatio
	return width - side - 1, side
}

func (m *Model) resize() {
	main, side := m.layoutWidths()
	// Input frame: border (2) + padding (2) + prompt.
	m.input.Width = utils.Max(main-6-utils.DisplayWidth(m.input.Prompt)-12, 10)
	m.suggestionList.SetSize(main-4, 6)
	m.relatedList.SetSize(main-4, utils.Clamp(m.height/3, 4, 12))
	m.favoritesList.SetSize(side-4, utils.Clamp(m.height-8, 4, 30))
	m.help.Width = utils.Max(m.width, minWidth)
}

func (m Model) View() string {
	mainWidth, sideWidth := m.layoutWidths()

	main := m.renderMain(mainWidth)
	side := m.renderFavorites(sideWidth)

	var body string
	if mainWidth == sideWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, main, side)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", side)
	}

	width := utils.Max(m.width, minWidth)
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.RenderTitle("Medical Term Dictionary"),
		m.renderNavigation(),
		theme.RenderDivider(width),
		body,
		theme.RenderFooter(m.help.View(m.keys.withFocus(m.focus)), width),
	)
}

func (m Model) renderNavigation() string {
	items := make([]theme.NavigationItem, 0, 4)
	for _, f := range []Focus{FocusInput, FocusSuggestions, FocusResults, FocusFavorites} {
		items = append(items, theme.NavigationItem{
			Label:    f.String(),
			Active:   f == m.focus,
			Disabled: !m.available(f),
		})
	}
	return theme.RenderNavigationBar(items)
}

func (m Model) renderMain(width int) string {
	sections := []string{m.renderSearchBar(width)}

	if len(m.state.Suggestions()) > 0 {
		sections = append(sections, theme.RenderPanel(m.suggestionList.Render(), width, m.focus == FocusSuggestions))
	}

	if m.state.Loading() {
		sections = append(sections, m.spinner.View()+" "+theme.RenderTextDim("Searching..."))
	}

	if msg := m.state.Error(); msg != "" {
		sections = append(sections, theme.RenderError(msg))
	}

	if len(m.state.Definitions()) > 0 {
		sections = append(sections, m.renderDefinitions(width))
	}

	if len(m.state.RelatedTerms()) > 0 {
		title := theme.HeaderStyle.Render(fmt.Sprintf("Related terms for %q:", m.state.SearchedTerm()))
		content := title + "\n" + m.relatedList.Render()
		sections = append(sections, theme.RenderPanel(content, width, m.focus == FocusResults))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n"))
}

func (m Model) renderSearchBar(width int) string {
	input := theme.RenderInput(m.input.View(), width-14, m.focus == FocusInput)
	button := theme.RenderButton(theme.IconSearch+" Search", m.state.CanSubmit())
	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}

func (m Model) renderDefinitions(width int) string {
	term := m.state.SearchedTerm()
	var b strings.Builder

	header := theme.HeaderStyle.Render(fmt.Sprintf("Definitions for %q:", term))
	b.WriteString(header + "  " + theme.RenderFavoriteIcon(m.favorites.Contains(term)))
	b.WriteString("\n")

	if entry := m.state.Entry(); entry != nil {
		var meta []string
		if hw := entry.DisplayHeadword(); hw != "" {
			meta = append(meta, hw)
		}
		if entry.FunctionalLabel != "" {
			meta = append(meta, entry.FunctionalLabel)
		}
		if entry.Meta.ID != "" {
			meta = append(meta, "id "+entry.Meta.ID)
		}
		if len(meta) > 0 {
			b.WriteString(theme.SubtitleStyle.Render(strings.Join(meta, " · ")))
			b.WriteString("\n")
		}
	}

	textWidth := utils.Max(width-8, 10)
	for _, def := range m.state.Definitions() {
		for i, line := range utils.WrapText(def, textWidth) {
			prefix := "  "
			if i == 0 {
				prefix = theme.IconBullet + " "
			}
			b.WriteString(prefix + theme.RenderText(line) + "\n")
		}
	}

	return theme.RenderPanel(strings.TrimRight(b.String(), "\n"), width, false)
}

func (m Model) renderFavorites(width int) string {
	return theme.RenderPanel(m.favoritesList.Render(), width, m.focus == FocusFavorites)
}
