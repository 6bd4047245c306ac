package scheduler

// GenerateInput carries one free-form scheduling prompt.
type GenerateInput struct {
	Prompt string
}

// CreateInput is a manually authored task. Title, Date, StartTime,
// EndTime and Category are required; Color falls back to the fixed
// category color when empty.
type CreateInput struct {
	Title     string
	Date      string
	StartTime string
	EndTime   string
	Category  string
	Color     string
	Completed bool
}

// UpdateInput is a partial update. Nil fields are left untouched; the
// task ID is never changed.
type UpdateInput struct {
	ID        string
	Title     *string
	Date      *string
	StartTime *string
	EndTime   *string
	Category  *string
	Color     *string
	Completed *bool
}
