package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quran-wbw/internal/theme"
)

type styles struct {
	title       lipgloss.Style
	label       lipgloss.Style
	labelActive lipgloss.Style
	heading     lipgloss.Style
	reference   lipgloss.Style
	translation lipgloss.Style
	divider     lipgloss.Style
	help        lipgloss.Style
	err         lipgloss.Style
	success     lipgloss.Style
	warning     lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Heading).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		label:       lipgloss.NewStyle().Foreground(t.Muted).Width(labelWidth),
		labelActive: lipgloss.NewStyle().Bold(true).Foreground(t.BorderActive).Width(labelWidth),
		heading:     lipgloss.NewStyle().Bold(true).Foreground(t.Heading),
		reference:   lipgloss.NewStyle().Bold(true).Foreground(t.Reference),
		translation: lipgloss.NewStyle().Foreground(t.Translation),
		divider:     lipgloss.NewStyle().Foreground(t.Border),
		help:        lipgloss.NewStyle().Foreground(t.Muted),
		err:         lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		success:     lipgloss.NewStyle().Foreground(t.Success),
		warning:     lipgloss.NewStyle().Foreground(t.Warning),
		spinner:     lipgloss.NewStyle().Foreground(t.Accent),
	}
}

const labelWidth = 16

// render colours the plain output of verses.Format line by line. The text
// itself is left untouched so what is shown matches what is copied.
func (s styles) render(plain string) string {
	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		switch {
		case line == "":
		case !strings.HasPrefix(line, "\t") && strings.HasSuffix(line, ":"):
			lines[i] = s.heading.Render(line)
		case strings.HasPrefix(line, "\t\t"):
			lines[i] = s.translation.Render(line)
		case strings.HasPrefix(line, "\t"):
			key, rest, _ := strings.Cut(strings.TrimPrefix(line, "\t"), "\t")
			lines[i] = "\t" + s.reference.Render(key)
			if rest != "" {
				lines[i] += "\t" + s.translation.Render(rest)
			}
		}
	}
	return strings.Join(lines, "\n")
}
