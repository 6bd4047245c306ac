package engine

import (
	"strings"
	"unicode/utf8"
)

// minSentenceLen is the shortest trimmed fragment still treated as a
// sentence.
const minSentenceLen = 3

// Sentences splits a prompt into trimmed candidate sentences on '.',
// ',' and newlines. Fragments shorter than three characters are
// dropped silently.
func Sentences(prompt string) []string {
	parts := strings.FieldsFunc(prompt, func(r rune) bool {
		return r == '.' || r == ',' || r == '\n'
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) < minSentenceLen {
			continue
		}
		out = append(out, p)
	}
	return out
}
