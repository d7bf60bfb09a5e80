package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the terminal rendition. Braille cells take one color, so
// trails and backdrop share Ink.
type Theme struct {
	Name   string
	Ink    lipgloss.Color
	Paper  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemePaper = Theme{
		Name:   "paper",
		Ink:    lipgloss.Color("#111111"),
		Paper:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#555555"),
		Text:   lipgloss.Color("#222222"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeNight = Theme{
		Name:   "night",
		Ink:    lipgloss.Color("#e8e8e8"),
		Paper:  lipgloss.Color("#0a0a0a"),
		Accent: lipgloss.Color("#bbbbbb"),
		Text:   lipgloss.Color("#f0f0f0"),
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeSepia = Theme{
		Name:   "sepia",
		Ink:    lipgloss.Color("#3b2a1a"),
		Paper:  lipgloss.Color("#f3e9d2"),
		Accent: lipgloss.Color("#8b5e34"),
		Text:   lipgloss.Color("#3b2a1a"),
		Muted:  lipgloss.Color("#a08a6a"),
	}

	Themes = []Theme{ThemePaper, ThemeNight, ThemeSepia}
)

// GetTheme returns the named theme, or paper.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next returns the theme after t in Themes, wrapping.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
