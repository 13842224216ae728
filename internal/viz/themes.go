package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors around the grid. Cell colors come from
// the story.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Tooltip    lipgloss.Color
}

var (
	ThemeMidnight = Theme{
		Name:       "midnight",
		Background: lipgloss.Color("#1b1b1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Accent:     lipgloss.Color("#00cccc"),
		Border:     lipgloss.Color("#444466"),
		Tooltip:    lipgloss.Color("#ffc60e"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Background: lipgloss.Color("#f5f1e8"),
		Text:       lipgloss.Color("#222222"),
		Muted:      lipgloss.Color("#8a8272"),
		Accent:     lipgloss.Color("#c2272d"),
		Border:     lipgloss.Color("#bfb8a5"),
		Tooltip:    lipgloss.Color("#015aaa"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#00a8cc"),
		Border:     lipgloss.Color("#0077be"),
		Tooltip:    lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff6b6b"),
		Border:     lipgloss.Color("#feca57"),
		Tooltip:    lipgloss.Color("#ff9ff3"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Border:     lipgloss.Color("#00cc00"),
		Tooltip:    lipgloss.Color("#ffff00"),
	}

	Themes = []Theme{
		ThemeMidnight,
		ThemePaper,
		ThemeOcean,
		ThemeSunset,
		ThemeRetro,
	}
)

// GetTheme returns a theme by name, midnight when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

// NextTheme returns the theme after name, wrapping.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
