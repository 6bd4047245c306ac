package model

// Category classifies a task into one of five fixed buckets.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategorySocial    Category = "social"
	CategoryPersonal  Category = "personal"
)

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryHealth, CategoryEducation, CategorySocial, CategoryPersonal:
		return true
	}
	return false
}

// Task is the schedulable unit persisted to the task store.
// Field names and types are part of the wire contract; the export and
// report consumers depend on them staying stable.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartTime   string   `json:"startTime"` // 24-hour HH:MM
	EndTime     string   `json:"endTime"`   // 24-hour HH:MM
	Category    Category `json:"category"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Color       string   `json:"color"`
	Completed   bool     `json:"completed"`
	AIGenerated bool     `json:"aiGenerated,omitempty"`
	Repeating   bool     `json:"repeating,omitempty"`
	RepeatDays  []string `json:"repeatDays,omitempty"`
}
