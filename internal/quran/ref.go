package quran

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
)

// VerseRef points at one verse.
type VerseRef struct {
	Chapter int
	Verse   int
}

// Key returns the "chapter:verse" form used by the content API.
func (r VerseRef) Key() string {
	return fmt.Sprintf("%d:%d", r.Chapter, r.Verse)
}

func (r VerseRef) String() string {
	return r.Key()
}

// Validate checks r against the chapter table.
func (r VerseRef) Validate() error {
	n, err := VerseCount(r.Chapter)
	if err != nil {
		return err
	}
	if r.Verse < 1 || r.Verse > n {
		return &VerseOutOfRangeError{Chapter: r.Chapter, Verse: r.Verse, Max: n}
	}

	return nil
}

// ParseRef parses "chapter:verse", e.g. "2:29", and validates the result.
func ParseRef(s string) (VerseRef, error) {
	s = strings.TrimSpace(s)
	chapterPart, versePart, ok := strings.Cut(s, ":")
	if !ok {
		return VerseRef{}, errors.Wrapf(ErrInvalidReference, "%q: expected chapter:verse", s)
	}

	chapter, err := strconv.Atoi(strings.TrimSpace(chapterPart))
	if err != nil {
		return VerseRef{}, errors.Wrapf(ErrInvalidReference, "%q: bad chapter", s)
	}
	verse, err := strconv.Atoi(strings.TrimSpace(versePart))
	if err != nil {
		return VerseRef{}, errors.Wrapf(ErrInvalidReference, "%q: bad verse", s)
	}

	ref := VerseRef{Chapter: chapter, Verse: verse}
	if err := ref.Validate(); err != nil {
		return VerseRef{}, err
	}

	return ref, nil
}
