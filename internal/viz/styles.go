package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	tooltip  lipgloss.Style
	key      lipgloss.Style
	hint     lipgloss.Style
	active   lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		tooltip:  lipgloss.NewStyle().Foreground(t.Background).Background(t.Tooltip).Padding(0, 1),
		key:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		active:   lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
	}
}

// Separator is a muted rule with a diamond in the middle.
func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// Shade blends fill toward bg as opacity drops. Opacity 1 returns fill
// unchanged; unparseable colors are returned as given.
func Shade(fill string, bg lipgloss.Color, opacity float64) string {
	if opacity >= 1 {
		return fill
	}
	if opacity < 0 {
		opacity = 0
	}
	f, err := colorful.Hex(fill)
	if err != nil {
		return fill
	}
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fill
	}
	return b.BlendRgb(f, opacity).Clamped().Hex()
}

// FadeText renders s in the theme text color faded by alpha.
func FadeText(s string, t Theme, alpha float64) string {
	c := Shade(string(t.Text), t.Background, alpha)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(s)
}
