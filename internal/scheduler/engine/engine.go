package engine

import "time"

// Engine turns a free-form scheduling prompt into schedulable task
// candidates. The pipeline runs strictly forward: segmentation →
// recurrence detection → phrase extraction → time normalization →
// duration defaults → categorization → recurrence expansion.
type Engine struct{}

// New creates an extraction Engine.
func New() *Engine {
	return &Engine{}
}

// Extract runs the full pipeline against prompt. now is the single
// time reference for the whole call: it stamps the date on
// non-recurring tasks and decides the next-week rollover of recurring
// ones. Sentences that yield no usable task are skipped, never an
// error.
func (e *Engine) Extract(prompt string, now time.Time) []Candidate {
	rec := DetectRecurrence(prompt)

	var out []Candidate
	for _, sentence := range Sentences(prompt) {
		phrase, ok := ExtractPhrase(sentence)
		if !ok {
			continue
		}

		// A fragment that only restates the repetition cue, like the
		// trailing "repeating" in "team sync every monday, repeating",
		// carries no task of its own.
		if isRecurrenceCue(phrase.Name) {
			continue
		}

		start, ok := NormalizeTime(phrase.RawStart)
		if !ok {
			start = DefaultStart
		}
		end, ok := NormalizeTime(phrase.RawEnd)
		if !ok {
			end = EndTime(start, DurationFor(phrase.Name))
		}

		category := Categorize(phrase.Name)

		out = append(out, Expand(Candidate{
			Name:      phrase.Name,
			StartTime: start,
			EndTime:   end,
			Category:  category,
			Color:     ColorFor(category),
		}, rec, now)...)
	}
	return out
}
