package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the palette of the TUI.
type Theme struct {
	Key  string // name stored in settings
	Name string

	// Verse output
	Heading     lipgloss.Color
	Reference   lipgloss.Color
	Translation lipgloss.Color

	// Chrome
	Accent       lipgloss.Color
	Muted        lipgloss.Color
	Error        lipgloss.Color
	Success      lipgloss.Color
	Warning      lipgloss.Color
	Border       lipgloss.Color
	BorderActive lipgloss.Color
}

// Available themes
var (
	CatppuccinMocha = Theme{
		Key:          "catppuccin-mocha",
		Name:         "Catppuccin Mocha",
		Heading:      lipgloss.Color("#f5c2e7"),
		Reference:    lipgloss.Color("#89b4fa"),
		Translation:  lipgloss.Color("#cdd6f4"),
		Accent:       lipgloss.Color("#a6e3a1"),
		Muted:        lipgloss.Color("#6c7086"),
		Error:        lipgloss.Color("#f38ba8"),
		Success:      lipgloss.Color("#a6e3a1"),
		Warning:      lipgloss.Color("#f9e2af"),
		Border:       lipgloss.Color("#45475a"),
		BorderActive: lipgloss.Color("#89b4fa"),
	}

	CatppuccinLatte = Theme{
		Key:          "catppuccin-latte",
		Name:         "Catppuccin Latte",
		Heading:      lipgloss.Color("#ea76cb"),
		Reference:    lipgloss.Color("#1e66f5"),
		Translation:  lipgloss.Color("#4c4f69"),
		Accent:       lipgloss.Color("#40a02b"),
		Muted:        lipgloss.Color("#9ca0b0"),
		Error:        lipgloss.Color("#d20f39"),
		Success:      lipgloss.Color("#40a02b"),
		Warning:      lipgloss.Color("#df8e1d"),
		Border:       lipgloss.Color("#dce0e8"),
		BorderActive: lipgloss.Color("#1e66f5"),
	}

	Dracula = Theme{
		Key:          "dracula",
		Name:         "Dracula",
		Heading:      lipgloss.Color("#ff79c6"),
		Reference:    lipgloss.Color("#bd93f9"),
		Translation:  lipgloss.Color("#f8f8f2"),
		Accent:       lipgloss.Color("#50fa7b"),
		Muted:        lipgloss.Color("#6272a4"),
		Error:        lipgloss.Color("#ff5555"),
		Success:      lipgloss.Color("#50fa7b"),
		Warning:      lipgloss.Color("#f1fa8c"),
		Border:       lipgloss.Color("#44475a"),
		BorderActive: lipgloss.Color("#bd93f9"),
	}

	SolarizedDark = Theme{
		Key:          "solarized-dark",
		Name:         "Solarized Dark",
		Heading:      lipgloss.Color("#d33682"),
		Reference:    lipgloss.Color("#268bd2"),
		Translation:  lipgloss.Color("#839496"),
		Accent:       lipgloss.Color("#2aa198"),
		Muted:        lipgloss.Color("#586e75"),
		Error:        lipgloss.Color("#dc322f"),
		Success:      lipgloss.Color("#859900"),
		Warning:      lipgloss.Color("#b58900"),
		Border:       lipgloss.Color("#073642"),
		BorderActive: lipgloss.Color("#268bd2"),
	}
)

// AllThemes returns every theme in cycling order.
func AllThemes() []Theme {
	return []Theme{
		CatppuccinMocha,
		CatppuccinLatte,
		Dracula,
		SolarizedDark,
	}
}

// GetTheme returns a theme by key, defaulting to Catppuccin Mocha if not found
func GetTheme(key string) Theme {
	for _, t := range AllThemes() {
		if t.Key == key {
			return t
		}
	}
	return CatppuccinMocha
}

// Next returns the theme after key, wrapping around.
func Next(key string) Theme {
	all := AllThemes()
	for i, t := range all {
		if t.Key == key {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
