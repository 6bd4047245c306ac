package engine

import "privassistant/internal/model"

// Phrase is the raw per-sentence extraction result, before any time
// normalization. RawStart and RawEnd hold clock tokens as written by
// the user ("5pm", "17:30") and may be empty.
type Phrase struct {
	Name     string
	RawStart string
	RawEnd   string
}

// RecurrenceSpec is the whole-prompt repetition cue. Days is kept in
// canonical week order (Monday…Sunday), never in order of appearance.
type RecurrenceSpec struct {
	Active bool
	Days   []string
}

// Candidate is one extracted, normalized, dated task awaiting
// materialization. Everything except identity is final.
type Candidate struct {
	Name       string // as extracted, not yet title-cased
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Category   model.Category
	Color      string
	Date       string // YYYY-MM-DD
	Repeating  bool
	RepeatDays []string
}
