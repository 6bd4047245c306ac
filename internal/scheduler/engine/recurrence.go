package engine

import "strings"

// weekdays is the canonical week order used for recurrence math.
var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// defaultRepeatDays applies when a prompt asks for repetition without
// naming any weekday.
var defaultRepeatDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// DetectRecurrence scans the whole prompt (not per sentence) for
// repetition cues. The result is computed once and applied to every
// task the prompt yields.
func DetectRecurrence(prompt string) RecurrenceSpec {
	lower := strings.ToLower(prompt)
	if !strings.Contains(lower, "repeating") && !strings.Contains(lower, "weekly") {
		return RecurrenceSpec{}
	}

	spec := RecurrenceSpec{Active: true}
	for _, day := range weekdays {
		if strings.Contains(lower, day) {
			spec.Days = append(spec.Days, day)
		}
	}
	if len(spec.Days) == 0 {
		spec.Days = append([]string(nil), defaultRepeatDays...)
	}
	return spec
}

// isRecurrenceCue reports whether a task name consists solely of
// repetition cue words.
func isRecurrenceCue(name string) bool {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if f != "repeating" && f != "weekly" {
			return false
		}
	}
	return true
}
