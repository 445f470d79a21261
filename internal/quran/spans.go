package quran

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// VerseSpan is a run of consecutive verses inside one chapter, Start..End inclusive.
type VerseSpan struct {
	Chapter int
	Start   int
	End     int
}

// Len returns the number of verses in the span.
func (s VerseSpan) Len() int {
	return s.End - s.Start + 1
}

// Refs lists every verse in the span in order.
func (s VerseSpan) Refs() []VerseRef {
	refs := make([]VerseRef, 0, s.Len())
	for v := s.Start; v <= s.End; v++ {
		refs = append(refs, VerseRef{Chapter: s.Chapter, Verse: v})
	}
	return refs
}

func (s VerseSpan) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Chapter, s.Start, s.End)
}

// ResolveSpans splits count verses starting at start into per-chapter spans.
// The spans are contiguous, ascending and cover exactly count verses.
func ResolveSpans(start VerseRef, count int) ([]VerseSpan, error) {
	if err := checkRequest(start, count); err != nil {
		return nil, err
	}

	var (
		spans     []VerseSpan
		remaining = count
		taken     = 0
		chapter   = start.Chapter
		verse     = start.Verse
	)
	for {
		if chapter > ChapterCount {
			return nil, &ChapterOverflowError{Start: start, Count: count, Available: taken}
		}

		available := chapterVerses[chapter-1] - verse + 1
		if remaining <= available {
			spans = append(spans, VerseSpan{Chapter: chapter, Start: verse, End: verse + remaining - 1})
			return spans, nil
		}

		spans = append(spans, VerseSpan{Chapter: chapter, Start: verse, End: chapterVerses[chapter-1]})
		remaining -= available
		taken += available
		chapter++
		verse = 1
	}
}

// ResolveEndVerse returns the last verse of the range ResolveSpans would cover,
// without building the span list.
func ResolveEndVerse(start VerseRef, count int) (VerseRef, error) {
	if err := checkRequest(start, count); err != nil {
		return VerseRef{}, err
	}

	remaining := count
	taken := 0
	cur := start
	for {
		if cur.Chapter > ChapterCount {
			return VerseRef{}, &ChapterOverflowError{Start: start, Count: count, Available: taken}
		}

		available := chapterVerses[cur.Chapter-1] - cur.Verse + 1
		if remaining <= available {
			cur.Verse += remaining - 1
			return cur, nil
		}

		remaining -= available
		taken += available
		cur = VerseRef{Chapter: cur.Chapter + 1, Verse: 1}
	}
}

func checkRequest(start VerseRef, count int) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if count < 1 {
		return errors.Wrapf(ErrInvalidCount, "got %d, want at least 1", count)
	}

	return nil
}
