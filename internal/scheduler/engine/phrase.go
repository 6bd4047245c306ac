package engine

import (
	"regexp"
	"strings"
)

// timeToken matches a raw clock expression such as "5", "5pm",
// "5:30pm" or "17:30".
const timeToken = `\d{1,2}(?::\d{2})?\s*(?:am|pm)?`

// rule is one extraction pattern. Rules are tried in declaration
// order and the first whose pattern matches the sentence wins —
// first match, not longest match.
type rule struct {
	name    string
	pattern *regexp.Regexp
	times   int // captured time slots: 0, 1 (start) or 2 (start+end)
}

var rules = []rule{
	{
		name:    "at",
		pattern: regexp.MustCompile(`(?i)(.+?)\s+at\s+(` + timeToken + `)`),
		times:   1,
	},
	{
		name:    "from-to",
		pattern: regexp.MustCompile(`(?i)(.+?)\s+from\s+(` + timeToken + `)\s+to\s+(` + timeToken + `)`),
		times:   2,
	},
	{
		name:    "by",
		pattern: regexp.MustCompile(`(?i)(.+?)\s+by\s+(` + timeToken + `)`),
		times:   1,
	},
	{
		name:    "bare",
		pattern: regexp.MustCompile(`(?i)(.+?)(?:\s+(?:at|from|by|until)\s+.+)?$`),
		times:   0,
	},
}

// trailingClause strips a dangling time clause left on an extracted
// name, e.g. "standup at" or "lunch until whenever".
var trailingClause = regexp.MustCompile(`(?i)\s+(?:at|from|to|by|until)\s+.+$`)

// ExtractPhrase applies the rule table to one sentence. ok is false
// when no usable task name survives cleanup; the caller drops the
// sentence without error.
func ExtractPhrase(sentence string) (Phrase, bool) {
	var ph Phrase
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		ph.Name = strings.TrimSpace(m[1])
		if r.times >= 1 {
			ph.RawStart = m[2]
		}
		if r.times >= 2 {
			ph.RawEnd = m[3]
		}
		break
	}

	ph.Name = strings.TrimSpace(trailingClause.ReplaceAllString(ph.Name, ""))
	if ph.Name == "" {
		return Phrase{}, false
	}
	return ph, true
}
