package engine

import "time"

// DateLayout is the calendar date format stamped on tasks.
const DateLayout = "2006-01-02"

// Expand materializes calendar dates for one candidate. A
// non-recurring candidate is dated today; a recurring one yields one
// instance per target weekday, each carrying the full repeat-day
// list. An occurrence landing today whose start time has already
// passed rolls a full week forward.
func Expand(base Candidate, rec RecurrenceSpec, now time.Time) []Candidate {
	if !rec.Active {
		base.Date = now.Format(DateLayout)
		return []Candidate{base}
	}

	today := weekdayIndex(now.Weekday())
	out := make([]Candidate, 0, len(rec.Days))
	for _, day := range rec.Days {
		delta := (dayIndex(day) - today + 7) % 7
		if delta == 0 && pastStart(now, base.StartTime) {
			delta = 7
		}

		inst := base
		inst.Date = now.AddDate(0, 0, delta).Format(DateLayout)
		inst.Repeating = true
		inst.RepeatDays = rec.Days
		out = append(out, inst)
	}
	return out
}

// weekdayIndex converts time.Weekday (Sunday = 0) to the canonical
// Monday = 0 index used by the weekday list.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func dayIndex(name string) int {
	for i, d := range weekdays {
		if d == name {
			return i
		}
	}
	return 0
}

// pastStart reports whether now's time-of-day is strictly after the
// HH:MM start.
func pastStart(now time.Time, start string) bool {
	hour, minute := splitClock(start)
	if now.Hour() != hour {
		return now.Hour() > hour
	}
	if now.Minute() != minute {
		return now.Minute() > minute
	}
	return now.Second() > 0 || now.Nanosecond() > 0
}
