package api

// ChapterVersesResponse is the body of verses/by_chapter/{chapter}.
type ChapterVersesResponse struct {
	Verses     []Verse    `json:"verses"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	PerPage      int  `json:"per_page"`
	CurrentPage  int  `json:"current_page"`
	NextPage     *int `json:"next_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
}

type Verse struct {
	ID          int    `json:"id"`
	VerseNumber int    `json:"verse_number"`
	VerseKey    string `json:"verse_key"`
	Words       []Word `json:"words"`
}

// Word is one token of a verse. Besides real words the API also returns
// markers such as the verse-end glyph; CharTypeName tells them apart.
type Word struct {
	ID           int             `json:"id"`
	Position     int             `json:"position"`
	TextUthmani  string          `json:"text_uthmani"`
	CharTypeName string          `json:"char_type_name"`
	Translation  WordTranslation `json:"translation"`
}

// CharTypeWord marks an actual word, as opposed to "end" or "pause" markers.
const CharTypeWord = "word"

// IsWord reports whether w is a real word.
func (w Word) IsWord() bool {
	return w.CharTypeName == CharTypeWord
}

type WordTranslation struct {
	Text         string `json:"text"`
	LanguageName string `json:"language_name"`
}

// AdvancedCopyResponse is the body of verses/advanced_copy.
type AdvancedCopyResponse struct {
	Result string `json:"result"`
}
