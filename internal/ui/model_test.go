package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"quran-wbw/internal/quran"
	"quran-wbw/internal/theme"
	"quran-wbw/internal/verses"
)

type fakeFetcher struct {
	requests []verses.Request
	failures []error
	// failAfter makes every call past the first n return an error; 0 never fails.
	failAfter int
}

func (f *fakeFetcher) Fetch(_ context.Context, req verses.Request) (*verses.Result, error) {
	f.requests = append(f.requests, req)
	if f.failAfter > 0 && len(f.requests) > f.failAfter {
		return nil, errors.New("network down")
	}
	spans, err := quran.ResolveSpans(req.Start, req.Count)
	if err != nil {
		return nil, err
	}

	res := &verses.Result{Spans: spans, Failures: f.failures}
	for _, s := range spans {
		for _, ref := range s.Refs() {
			res.Verses = append(res.Verses, verses.VerseRecord{
				Ref:          ref,
				Key:          ref.Key(),
				Translations: map[string]string{"en": "text " + ref.Key()},
				Words: []verses.Word{{
					Arabic:       "كلمة",
					Translations: map[string]string{"en": "word"},
				}},
			})
		}
	}
	return res, nil
}

func stubClipboard(t *testing.T, err error) *[]string {
	t.Helper()
	var copied []string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return err
	}
	t.Cleanup(func() { clipboardWrite = orig })
	return &copied
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func newTestModel(t *testing.T, f *fakeFetcher) Model {
	t.Helper()
	m := NewModel(Config{Fetcher: f, Layout: verses.Layout{Sections: []string{"en"}}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	require.True(t, m.ready)
	return m
}

func TestFetchFlow(t *testing.T) {
	copied := stubClipboard(t, nil)
	f := &fakeFetcher{}
	m := newTestModel(t, f)

	m = typeText(t, m, "2:285")
	require.Equal(t, "2:285", m.inputs[inputStart].Value())

	// enter on the first field with no count moves on
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, inputCount, m.focus)
	require.False(t, m.loading)

	m = typeText(t, m, "3")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.loading)
	require.Nil(t, m.err)

	req, err := m.readRequest()
	require.NoError(t, err)
	require.Equal(t, verses.Request{Start: quran.VerseRef{Chapter: 2, Verse: 285}, Count: 3}, req)

	msg := m.fetch(req)()
	m, _ = update(t, m, msg)
	require.False(t, m.loading)
	require.Equal(t, "English Translation:\n\t2:285.\ttext 2:285\n\t2:286.\ttext 2:286\n\t3:1.\ttext 3:1", m.content)
	require.Equal(t, []string{m.content}, *copied)
	require.Equal(t, "Copied to clipboard!", m.status)

	require.Empty(t, m.inputs[inputStart].Value())
	require.Empty(t, m.inputs[inputCount].Value())
	require.Equal(t, inputStart, m.focus)
	require.Contains(t, m.View(), "Copied to clipboard!")
}

func TestInvalidInputKeepsLooping(t *testing.T) {
	stubClipboard(t, nil)
	f := &fakeFetcher{}
	m := newTestModel(t, f)

	m = typeText(t, m, "115:1")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "2")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.True(t, errors.Is(m.err, quran.ErrUnknownChapter))
	require.Contains(t, m.View(), "Error:")

	// overflow is reported by the fetcher and the model stays usable
	msg := m.fetch(verses.Request{Start: quran.VerseRef{Chapter: 114, Verse: 6}, Count: 2})()
	m, _ = update(t, m, msg)
	require.True(t, errors.Is(m.err, quran.ErrChapterOverflow))
	require.False(t, m.loading)
	require.Empty(t, m.content)
}

func TestPartialResultsAndCopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no xclip"))
	f := &fakeFetcher{failures: []error{errors.New("ur translations: boom")}}
	m := newTestModel(t, f)

	msg := m.fetch(verses.Request{Start: quran.VerseRef{Chapter: 1, Verse: 1}, Count: 1})()
	m, _ = update(t, m, msg)
	require.Len(t, m.failures, 1)
	require.Error(t, m.err)
	require.Contains(t, m.err.Error(), "no xclip")
	require.NotEmpty(t, m.content)
}

func TestThemeCycleIsSaved(t *testing.T) {
	var saved []string
	m := NewModel(Config{
		Fetcher:   &fakeFetcher{},
		Theme:     theme.Dracula.Key,
		SaveTheme: func(key string) error { saved = append(saved, key); return nil },
	})
	require.Equal(t, theme.Dracula, m.theme)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	want := theme.Next(theme.Dracula.Key)
	require.Equal(t, want, m.theme)
	require.Equal(t, []string{want.Key}, saved)
}

func TestToggleWordsReformatsWithoutFetching(t *testing.T) {
	copied := stubClipboard(t, nil)
	f := &fakeFetcher{failAfter: 1}
	m := NewModel(Config{Fetcher: f, Layout: verses.Layout{Sections: []string{"en"}, WordColumns: []string{"en"}}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	// nothing fetched yet, only the layout flips
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Nil(t, cmd)
	require.True(t, m.layout.ShowWords)
	require.Empty(t, m.content)

	req := verses.Request{Start: quran.VerseRef{Chapter: 1, Verse: 1}, Count: 2}
	m, _ = update(t, m, m.fetch(req)())
	require.Len(t, f.requests, 1)
	withWords := m.content
	require.Contains(t, withWords, "Word-by-Word:")
	require.Contains(t, withWords, "word = كلمة")

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Nil(t, cmd)
	require.False(t, m.loading)
	require.False(t, m.layout.ShowWords)
	require.Nil(t, m.err)
	require.Len(t, f.requests, 1)
	require.NotContains(t, m.content, "Word-by-Word:")
	require.Contains(t, m.content, "text 1:2")
	require.Equal(t, []string{withWords, m.content}, *copied)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Equal(t, withWords, m.content)
	require.Len(t, f.requests, 1)
}

func TestFocusedLabelUsesActiveColour(t *testing.T) {
	m := NewModel(Config{Fetcher: &fakeFetcher{}, Theme: theme.Dracula.Key})
	active := theme.Dracula.BorderActive
	require.Equal(t, active, m.labelStyle(inputStart).GetForeground())
	require.Equal(t, theme.Dracula.Muted, m.labelStyle(inputCount).GetForeground())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, active, m.labelStyle(inputCount).GetForeground())
	require.Equal(t, theme.Dracula.Muted, m.labelStyle(inputStart).GetForeground())
}

func TestQuit(t *testing.T) {
	m := NewModel(Config{Fetcher: &fakeFetcher{}})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestRenderKeepsText(t *testing.T) {
	plain := "English Translation:\n\t1:1.\tIn the name\n\nWord-by-Word:\n\t1:1.\n\t\tIn = بِسْمِ\n"
	rendered := newStyles(theme.CatppuccinMocha).render(plain)
	for _, part := range []string{"English Translation:", "1:1.", "In the name", "In = بِسْمِ"} {
		require.True(t, strings.Contains(rendered, part), part)
	}
}
