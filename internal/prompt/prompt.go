// Package prompt is the plain line-by-line front end: ask for a start verse
// and a count, print the result and copy it, forever.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"quran-wbw/internal/log"
	"quran-wbw/internal/quran"
	"quran-wbw/internal/verses"
)

var separator = strings.Repeat("-", 50)

// Fetcher runs one request.
type Fetcher interface {
	Fetch(ctx context.Context, req verses.Request) (*verses.Result, error)
}

type Prompt struct {
	In      io.Reader
	Out     io.Writer
	Fetcher Fetcher
	Copy    func(string) error
	Layout  verses.Layout
}

// Run loops until in is exhausted or ctx is done. Bad input and failed
// fetches are reported and the loop asks again.
func (p *Prompt) Run(ctx context.Context) error {
	logger := log.Logger.Named("prompt")
	scanner := bufio.NewScanner(p.In)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	ask := func(question string) (string, bool) {
		fmt.Fprint(p.Out, question)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		line, ok := ask("Enter starting verse (e.g., 2:29): ")
		if !ok {
			break
		}
		start, err := quran.ParseRef(line)
		if err != nil {
			fmt.Fprintf(p.Out, "Error: %v\n", err)
			continue
		}

		line, ok = ask("Enter number of verses to fetch: ")
		if !ok {
			break
		}
		count, err := strconv.Atoi(line)
		if err != nil || count < 1 {
			fmt.Fprintf(p.Out, "Error: %q is not a positive number\n", line)
			continue
		}

		fmt.Fprintf(p.Out, "\nFetching %d verses starting from %s\n", count, start.Key())
		fmt.Fprintf(p.Out, "Translations: %s\n", languageList(verses.DefaultLanguages))
		fmt.Fprintf(p.Out, "Word-by-Word: %s\n", languageList(verses.DefaultLanguages))
		fmt.Fprintln(p.Out, separator)

		res, err := p.Fetcher.Fetch(ctx, verses.Request{Start: start, Count: count})
		if err != nil {
			fmt.Fprintf(p.Out, "Error: %v\n", err)
			continue
		}
		for _, f := range res.Failures {
			fmt.Fprintf(p.Out, "Error fetching %v\n", f)
		}

		text := verses.Format(res.Verses, p.Layout)
		fmt.Fprintln(p.Out, text)
		fmt.Fprintln(p.Out, separator)

		if err := p.Copy(text); err != nil {
			logger.Error("copy to clipboard", zap.Error(err))
			fmt.Fprintf(p.Out, "Could not copy to clipboard: %v\n", err)
			continue
		}
		fmt.Fprintln(p.Out, "Copied to clipboard!")
	}

	return errors.WithStack(scanner.Err())
}

func languageList(langs []string) string {
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, verses.LanguageName(l))
	}
	return strings.Join(names, " & ")
}
