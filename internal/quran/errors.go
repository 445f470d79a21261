package quran

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

var (
	// ErrUnknownChapter is returned for chapters outside [1, ChapterCount].
	ErrUnknownChapter = errors.New("unknown chapter")
	// ErrVerseOutOfRange is returned for verses the chapter does not have.
	ErrVerseOutOfRange = errors.New("verse out of range")
	// ErrChapterOverflow is returned when a verse count runs past the last chapter.
	ErrChapterOverflow = errors.New("chapter overflow")
	// ErrInvalidReference is returned for text that is not a "chapter:verse" pair.
	ErrInvalidReference = errors.New("invalid verse reference")
	// ErrInvalidCount is returned for verse counts below one.
	ErrInvalidCount = errors.New("invalid verse count")
	// ErrInvalidWindow is returned for index ranges FindWindow cannot page.
	ErrInvalidWindow = errors.New("invalid page window")
)

// UnknownChapterError reports a chapter number outside the table.
type UnknownChapterError struct {
	Chapter int
}

func (e *UnknownChapterError) Error() string {
	return fmt.Sprintf("unknown chapter %d: must be between 1 and %d", e.Chapter, ChapterCount)
}

func (e *UnknownChapterError) Unwrap() error {
	return ErrUnknownChapter
}

// VerseOutOfRangeError reports a verse number the chapter does not contain.
type VerseOutOfRangeError struct {
	Chapter int
	Verse   int
	Max     int
}

func (e *VerseOutOfRangeError) Error() string {
	return fmt.Sprintf("chapter %d has verses 1-%d, got %d", e.Chapter, e.Max, e.Verse)
}

func (e *VerseOutOfRangeError) Unwrap() error {
	return ErrVerseOutOfRange
}

// ChapterOverflowError reports a request that needs verses past the final chapter.
type ChapterOverflowError struct {
	Start     VerseRef
	Count     int
	Available int // verses from Start to the end of the book
}

func (e *ChapterOverflowError) Error() string {
	return fmt.Sprintf("cannot take %d verses from %s: only %d remain before the end of chapter %d",
		e.Count, e.Start.Key(), e.Available, ChapterCount)
}

func (e *ChapterOverflowError) Unwrap() error {
	return ErrChapterOverflow
}
