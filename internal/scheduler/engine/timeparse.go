package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches the prefix of a raw clock token: a 1–2 digit
// hour, an optional :MM, and an optional am/pm suffix with optional
// surrounding space.
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// NormalizeTime converts a raw clock token like "5pm", "5:30pm" or
// "17:30" to zero-padded 24-hour HH:MM. Minutes default to 0. Without
// an am/pm suffix the hour is taken verbatim, so "17" stays 17 and
// "5" stays 5. ok is false when the token is empty, malformed, or
// would leave the 24-hour range; callers treat that as "no time".
func NormalizeTime(raw string) (string, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}

	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// splitClock breaks a normalized HH:MM value into hour and minute.
func splitClock(clock string) (hour, minute int) {
	hour, _ = strconv.Atoi(clock[:2])
	minute, _ = strconv.Atoi(clock[3:])
	return hour, minute
}
