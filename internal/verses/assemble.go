package verses

import (
	"strings"

	"quran-wbw/internal/quran"
)

// BaseWordLanguage supplies the word list of every verse. Glosses in other
// languages are lined up with it by position.
const BaseWordLanguage = "en"

// WordGloss is one word of a verse with its translation in a single language.
type WordGloss struct {
	Arabic      string
	Translation string
}

// Word is one word of a verse with its translation in every fetched language.
type Word struct {
	Arabic       string
	Translations map[string]string
}

type VerseRecord struct {
	Ref          quran.VerseRef
	Key          string
	ArabicText   string
	Translations map[string]string // language -> full verse translation
	Words        []Word
}

// Assemble builds one record per verse of spans, in order.
//
// translations is verse key -> language -> text; words is language -> verse
// key -> glosses. The BaseWordLanguage list decides how many words a verse
// has. Another language with fewer entries gets "" for the missing positions,
// extra entries are ignored, and a verse without base words has none at all.
func Assemble(spans []quran.VerseSpan, translations map[string]map[string]string,
	words map[string]map[string][]WordGloss) []VerseRecord {
	var records []VerseRecord
	for _, span := range spans {
		for _, ref := range span.Refs() {
			key := ref.Key()
			base := words[BaseWordLanguage][key]

			merged := make([]Word, 0, len(base))
			for i, g := range base {
				w := Word{
					Arabic:       g.Arabic,
					Translations: map[string]string{BaseWordLanguage: g.Translation},
				}
				for lang, byKey := range words {
					if lang == BaseWordLanguage {
						continue
					}
					other := byKey[key]
					if i < len(other) {
						w.Translations[lang] = other[i].Translation
					} else {
						w.Translations[lang] = ""
					}
				}
				merged = append(merged, w)
			}

			arabic := make([]string, 0, len(merged))
			for _, w := range merged {
				arabic = append(arabic, w.Arabic)
			}

			texts := translations[key]
			if texts == nil {
				texts = map[string]string{}
			}

			records = append(records, VerseRecord{
				Ref:          ref,
				Key:          key,
				ArabicText:   strings.Join(arabic, " "),
				Translations: texts,
				Words:        merged,
			})
		}
	}
	return records
}
