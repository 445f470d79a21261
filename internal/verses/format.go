package verses

import (
	"fmt"
	"strings"
)

var languageNames = map[string]string{
	"en": "English",
	"ur": "Urdu",
}

// LanguageName returns the display name of a language code.
func LanguageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return strings.ToUpper(lang)
}

// Layout controls what Format prints.
type Layout struct {
	// Sections lists the translation sections in print order.
	Sections []string
	// WordColumns lists the gloss languages printed before the Arabic word.
	WordColumns []string
	ShowWords   bool
}

// DefaultLayout prints Urdu, then English, then the word-by-word block with
// English and Urdu glosses.
func DefaultLayout() Layout {
	return Layout{
		Sections:    []string{"ur", "en"},
		WordColumns: []string{"en", "ur"},
		ShowWords:   true,
	}
}

// Format renders records as tab-indented plain text, ready for the clipboard.
func Format(records []VerseRecord, layout Layout) string {
	var out []string

	for i, lang := range layout.Sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, LanguageName(lang)+" Translation:")
		for _, r := range records {
			if text, ok := r.Translations[lang]; ok {
				out = append(out, fmt.Sprintf("\t%s.\t%s", r.Key, text))
			}
		}
	}

	if layout.ShowWords {
		out = append(out, "", "Word-by-Word:")
		for _, r := range records {
			if len(r.Words) == 0 {
				continue
			}
			out = append(out, fmt.Sprintf("\t%s.", r.Key))
			for _, w := range r.Words {
				cols := make([]string, 0, len(layout.WordColumns)+1)
				for _, lang := range layout.WordColumns {
					cols = append(cols, w.Translations[lang])
				}
				cols = append(cols, w.Arabic)
				out = append(out, "\t\t"+strings.Join(cols, " = "))
			}
			out = append(out, "")
		}
	}

	return strings.Join(out, "\n")
}
