package theme

import (
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Single source of truth for application styling.

var (
	ColorFG     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F2F2F2"}
	ColorFGDim  = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#9A9A9A"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#1F6F8B", Dark: "#6FC3DF"}

	ColorSelectionBG = lipgloss.AdaptiveColor{Light: "#2A2A2A", Dark: "#E5E5E5"}
	ColorSelectionFG = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}

	ColorError    = lipgloss.Color("#CC3333")
	ColorFavorite = lipgloss.Color("#E0245E")
)

var (
	IconSearch        = "⌕"
	IconFavorite      = "♥"
	IconNotFavorite   = "♡"
	IconError         = "✗"
	IconBullet        = "•"
	IconPointer       = "›"
	BorderLight       = "─"
	BorderVert        = "│"
	IconSearchASCII   = ">"
	IconFavoriteASCII = "<3"
	IconNotFavASCII   = "</3"
	IconErrorASCII    = "x"
	IconBulletASCII   = "*"
	IconPointerASCII  = ">"
	BorderLightASCII  = "-"
	BorderVertASCII   = "|"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorFG).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFGDim).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorFG)

	TextDimStyle = lipgloss.NewStyle().
			Foreground(ColorFGDim)

	SelectionStyle = lipgloss.NewStyle().
			Background(ColorSelectionBG).
			Foreground(ColorSelectionFG).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelActiveStyle = PanelStyle.Copy().
				BorderForeground(ColorAccent)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.Copy().
				BorderForeground(ColorAccent)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorFGDim).
				Faint(true).
				Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(ColorFavorite).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorFGDim).
			Padding(0, 1)
)

func init() {
	if runtime.GOOS == "windows" || os.Getenv("MEDDICT_ASCII") == "1" {
		setupASCII()
	}
}

func setupASCII() {
	IconSearch = IconSearchASCII
	IconFavorite = IconFavoriteASCII
	IconNotFavorite = IconNotFavASCII
	IconError = IconErrorASCII
	IconBullet = IconBulletASCII
	IconPointer = IconPointerASCII
	BorderLight = BorderLightASCII
	BorderVert = BorderVertASCII

	asciiBorder := lipgloss.Border{
		Top: "-", Bottom: "-",
		Left: "|", Right: "|",
		TopLeft: "+", TopRight: "+",
		BottomLeft: "+", BottomRight: "+",
	}
	PanelStyle = PanelStyle.Copy().Border(asciiBorder)
	PanelActiveStyle = PanelActiveStyle.Copy().Border(asciiBorder)
	InputStyle = InputStyle.Copy().Border(asciiBorder)
	InputFocusedStyle = InputFocusedStyle.Copy().Border(asciiBorder)
}

func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

func RenderText(text string) string {
	return TextStyle.Render(text)
}

func RenderTextDim(text string) string {
	return TextDimStyle.Render(text)
}

// RenderPanel renders a bordered panel. A zero width lets content decide.
func RenderPanel(content string, width int, active bool) string {
	style := PanelStyle
	if active {
		style = PanelActiveStyle
	}
	if width > 0 {
		// Width excludes the border.
		return style.Copy().Width(width - 2).Render(content)
	}
	return style.Render(content)
}

// RenderInput frames the search input.
func RenderInput(content string, width int, focused bool) string {
	style := InputStyle
	if focused {
		style = InputFocusedStyle
	}
	if width > 0 {
		return style.Copy().Width(width - 2).Render(content)
	}
	return style.Render(content)
}

// RenderButton renders the search affordance, dimmed when disabled.
func RenderButton(text string, enabled bool) string {
	if enabled {
		return ButtonStyle.Render("[ " + text + " ]")
	}
	return ButtonDisabledStyle.Render("[ " + text + " ]")
}

func RenderError(text string) string {
	return ErrorStyle.Render(IconError + " " + text)
}

// RenderFavoriteIcon renders the favorite marker for a term's membership.
func RenderFavoriteIcon(favorite bool) string {
	if favorite {
		return FavoriteStyle.Render(IconFavorite)
	}
	return TextDimStyle.Render(IconNotFavorite)
}

// RenderSelection renders a highlighted row.
func RenderSelection(content string, width int) string {
	if width > 0 {
		return SelectionStyle.Copy().Width(width).Render(content)
	}
	return SelectionStyle.Render(content)
}

func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return TextDimStyle.Render(strings.Repeat(BorderLight, width))
}

func RenderFooter(text string, width int) string {
	if width > 0 {
		return FooterStyle.Copy().Width(width).Render(text)
	}
	return FooterStyle.Render(text)
}
