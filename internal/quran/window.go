package quran

import "github.com/Laisky/errors/v2"

// Window is a (page, per_page) pair for the content API's pagination.
type Window struct {
	PerPage int
	Page    int
}

// First returns the 1-based index of the first item on the page.
func (w Window) First() int {
	return (w.Page-1)*w.PerPage + 1
}

// Last returns the 1-based index of the last item on the page.
func (w Window) Last() int {
	return w.Page * w.PerPage
}

// FindWindow returns the smallest per_page for which the page holding
// startIndex also holds endIndex.
//
// Page sizes are tried in order from 1 so the result matches what a direct
// search yields. The loop ends by perPage == endIndex at the latest, where
// page 1 covers the whole range.
func FindWindow(startIndex, endIndex int) (Window, error) {
	if startIndex < 1 || endIndex < startIndex {
		return Window{}, errors.Wrapf(ErrInvalidWindow, "start=%d end=%d", startIndex, endIndex)
	}

	for perPage := 1; ; perPage++ {
		page := (startIndex + perPage - 1) / perPage
		if page*perPage >= endIndex {
			return Window{PerPage: perPage, Page: page}, nil
		}
	}
}
