package engine

import (
	"fmt"
	"strings"
)

// DefaultStart is the start time assumed when a sentence names no
// usable clock value.
const DefaultStart = "09:00"

// defaultDuration (minutes) applies when no keyword rule matches.
const defaultDuration = 60

// durationRule maps task-name keywords to an assumed duration in
// minutes. Rules are checked in order, first hit wins.
type durationRule struct {
	keywords []string
	minutes  int
}

var durationRules = []durationRule{
	{keywords: []string{"meeting", "call"}, minutes: 30},
	{keywords: []string{"workout", "exercise"}, minutes: 90},
	{keywords: []string{"study", "learn"}, minutes: 120},
}

// DurationFor returns the assumed duration in minutes for a task
// name, by case-insensitive keyword substring.
func DurationFor(name string) int {
	lower := strings.ToLower(name)
	for _, r := range durationRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.minutes
			}
		}
	}
	return defaultDuration
}

// EndTime adds a duration in minutes to an HH:MM start. A duration
// that would cross midnight is capped at 23:59: a task record cannot
// express an end date different from its start date, and multi-day
// events are out of scope.
func EndTime(start string, minutes int) string {
	hour, minute := splitClock(start)
	total := hour*60 + minute + minutes
	if total >= 24*60 {
		return "23:59"
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
