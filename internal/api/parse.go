package api

import (
	"regexp"
	"strings"
)

// Keys accept any Unicode decimal digit, not only ASCII ones.
var (
	parenKeyLine = regexp.MustCompile(`^\((\p{Nd}+:\p{Nd}+)\)\s*(.*)`)
	bareKeyLine  = regexp.MustCompile(`^(\p{Nd}+:\p{Nd}+)\s*(.*)`)
)

// ParseCopyText splits an advanced_copy result into verse key -> text.
// Lines start with "(2:29) text" or "2:29 text"; anything else is skipped.
// A later line for the same key wins.
func ParseCopyText(result string) map[string]string {
	texts := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(result), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := parenKeyLine.FindStringSubmatch(line)
		if m == nil {
			m = bareKeyLine.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		texts[m[1]] = strings.TrimSpace(m[2])
	}
	return texts
}
