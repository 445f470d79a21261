package verses

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quran-wbw/internal/quran"
)

func TestAssemblePadsShorterGlossLists(t *testing.T) {
	spans := []quran.VerseSpan{{Chapter: 1, Start: 1, End: 2}}
	words := map[string]map[string][]WordGloss{
		"en": {
			"1:1": {{Arabic: "بِسْمِ", Translation: "In (the) name"}, {Arabic: "ٱللَّهِ", Translation: "(of) Allah"}},
		},
		"ur": {
			"1:1": {{Arabic: "بِسْمِ", Translation: "نام سے"}},
			"1:2": {{Arabic: "ٱلْحَمْدُ", Translation: "سب تعریف"}},
		},
	}

	records := Assemble(spans, nil, words)
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, quran.VerseRef{Chapter: 1, Verse: 1}, first.Ref)
	require.Equal(t, "بِسْمِ ٱللَّهِ", first.ArabicText)
	require.Equal(t, []Word{
		{Arabic: "بِسْمِ", Translations: map[string]string{"en": "In (the) name", "ur": "نام سے"}},
		{Arabic: "ٱللَّهِ", Translations: map[string]string{"en": "(of) Allah", "ur": ""}},
	}, first.Words)
	require.NotNil(t, first.Translations)

	// Urdu glosses alone never produce words.
	require.Empty(t, records[1].Words)
	require.Equal(t, "", records[1].ArabicText)
}

func TestFormatDefaultLayout(t *testing.T) {
	records := []VerseRecord{
		{
			Key:          "2:286",
			Translations: map[string]string{"en": "Allah does not charge a soul", "ur": "خدا کسی شخص کو"},
			Words: []Word{
				{Arabic: "لَا", Translations: map[string]string{"en": "(Does) not", "ur": "نہیں"}},
				{Arabic: "يُكَلِّفُ", Translations: map[string]string{"en": "burden", "ur": ""}},
			},
		},
		{
			Key:          "3:1",
			Translations: map[string]string{"en": "Alif, Lam, Meem."},
		},
	}

	want := "Urdu Translation:\n" +
		"\t2:286.\tخدا کسی شخص کو\n" +
		"\n" +
		"English Translation:\n" +
		"\t2:286.\tAllah does not charge a soul\n" +
		"\t3:1.\tAlif, Lam, Meem.\n" +
		"\n" +
		"Word-by-Word:\n" +
		"\t2:286.\n" +
		"\t\t(Does) not = نہیں = لَا\n" +
		"\t\tburden =  = يُكَلِّفُ\n"

	require.Equal(t, want, Format(records, DefaultLayout()))
}

func TestFormatWithoutWords(t *testing.T) {
	records := []VerseRecord{{
		Key:          "1:1",
		Translations: map[string]string{"en": "In the name of Allah"},
		Words:        []Word{{Arabic: "بِسْمِ", Translations: map[string]string{"en": "In (the) name"}}},
	}}

	layout := DefaultLayout()
	layout.ShowWords = false
	layout.Sections = []string{"en"}

	require.Equal(t, "English Translation:\n\t1:1.\tIn the name of Allah", Format(records, layout))
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "Urdu", LanguageName("ur"))
	require.Equal(t, "English", LanguageName("en"))
	require.Equal(t, "FR", LanguageName("fr"))
}
