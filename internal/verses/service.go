// Package verses turns a "start verse + count" request into formatted verse text.
package verses

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"quran-wbw/internal/api"
	"quran-wbw/internal/log"
	"quran-wbw/internal/quran"
)

// DefaultLanguages is used when a Request leaves its languages empty.
var DefaultLanguages = []string{"en", "ur"}

// Source is the remote content API as seen by the pipeline.
type Source interface {
	GetTranslationText(ctx context.Context, from, to quran.VerseRef, lang string) (map[string]string, error)
	GetChapterWords(ctx context.Context, chapter int, w quran.Window, wordLang string) ([]api.Verse, error)
}

type Request struct {
	Start         quran.VerseRef
	Count         int
	Languages     []string // full-verse translations
	WordLanguages []string // word-by-word glosses
}

// Result is what one fetch produced. Failures lists the remote calls that
// failed; their verses are simply missing the affected text.
type Result struct {
	Spans    []quran.VerseSpan
	End      quran.VerseRef
	Verses   []VerseRecord
	Failures []error
}

type Service struct {
	src    Source
	logger logSDK.Logger
}

func NewService(src Source) *Service {
	return &Service{
		src:    src,
		logger: log.Logger.Named("verses"),
	}
}

// Fetch runs the request against the source, one call at a time.
//
// Errors in the request itself (bad reference, count running past the last
// chapter) are returned. Failed remote calls are logged and recorded in
// Result.Failures, and the rest of the request carries on.
func (s *Service) Fetch(ctx context.Context, req Request) (*Result, error) {
	end, err := quran.ResolveEndVerse(req.Start, req.Count)
	if err != nil {
		return nil, errors.Wrap(err, "resolve end verse")
	}
	spans, err := quran.ResolveSpans(req.Start, req.Count)
	if err != nil {
		return nil, errors.Wrap(err, "resolve spans")
	}

	languages := req.Languages
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	wordLanguages := req.WordLanguages
	if len(wordLanguages) == 0 {
		wordLanguages = DefaultLanguages
	}

	res := &Result{Spans: spans, End: end}
	s.logger.Debug("fetch verses",
		zap.String("start", req.Start.Key()),
		zap.String("end", end.Key()),
		zap.Int("count", req.Count),
		zap.Int("spans", len(spans)))

	translations := make(map[string]map[string]string)
	for _, lang := range languages {
		texts, err := s.src.GetTranslationText(ctx, req.Start, end, lang)
		if err != nil {
			s.logger.Warn("fetch translations",
				zap.String("from", req.Start.Key()),
				zap.String("to", end.Key()),
				zap.String("lang", lang),
				zap.Error(err))
			res.Failures = append(res.Failures, errors.Wrapf(err, "%s translations", lang))
			continue
		}
		for key, text := range texts {
			if translations[key] == nil {
				translations[key] = make(map[string]string)
			}
			translations[key][lang] = text
		}
	}

	words := make(map[string]map[string][]WordGloss)
	for _, lang := range wordLanguages {
		words[lang] = s.fetchWords(ctx, res, spans, lang)
	}

	res.Verses = Assemble(spans, translations, words)
	return res, nil
}

func (s *Service) fetchWords(ctx context.Context, res *Result, spans []quran.VerseSpan, lang string) map[string][]WordGloss {
	glosses := make(map[string][]WordGloss)
	for _, span := range spans {
		window, err := quran.FindWindow(span.Start, span.End)
		if err != nil {
			// spans always satisfy 1 <= Start <= End
			res.Failures = append(res.Failures, errors.Wrapf(err, "page window for %s", span))
			continue
		}

		verses, err := s.src.GetChapterWords(ctx, span.Chapter, window, lang)
		if err != nil {
			s.logger.Warn("fetch word-by-word",
				zap.String("lang", lang),
				zap.String("span", span.String()),
				zap.Int("page", window.Page),
				zap.Int("per_page", window.PerPage),
				zap.Error(err))
			res.Failures = append(res.Failures, errors.Wrapf(err, "%s word-by-word for chapter %d", lang, span.Chapter))
			continue
		}

		for _, v := range verses {
			if !inSpan(v.VerseKey, span) {
				continue
			}

			list := []WordGloss{}
			for _, w := range v.Words {
				if !w.IsWord() {
					continue
				}
				list = append(list, WordGloss{Arabic: w.TextUthmani, Translation: w.Translation.Text})
			}
			glosses[v.VerseKey] = list
		}
	}
	return glosses
}

// inSpan reports whether key names a verse of span. Pages usually hold a few
// verses either side of the span.
func inSpan(key string, span quran.VerseSpan) bool {
	ref, err := quran.ParseRef(key)
	if err != nil {
		return false
	}
	return ref.Chapter == span.Chapter && ref.Verse >= span.Start && ref.Verse <= span.End
}
