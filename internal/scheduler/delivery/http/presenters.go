package http

import (
	"fmt"
	"strings"

	"privassistant/internal/scheduler"
)

// generateReq is the body of POST /generate-tasks. Prompt is a
// pointer so a missing field and an empty one produce distinct
// errors.
type generateReq struct {
	Prompt *string `json:"prompt"`
}

func (r generateReq) validate() error {
	if r.Prompt == nil {
		return scheduler.ErrNoPrompt
	}
	if strings.TrimSpace(*r.Prompt) == "" {
		return scheduler.ErrEmptyPrompt
	}
	return nil
}

func (r generateReq) toInput() scheduler.GenerateInput {
	return scheduler.GenerateInput{Prompt: *r.Prompt}
}

// createReq is the body of POST /api/tasks.
type createReq struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

func (r createReq) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"date", r.Date},
		{"startTime", r.StartTime},
		{"endTime", r.EndTime},
		{"category", r.Category},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", scheduler.ErrMissingField, f.name)
		}
	}
	return nil
}

func (r createReq) toInput() scheduler.CreateInput {
	return scheduler.CreateInput{
		Title:     r.Title,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Category:  r.Category,
		Color:     r.Color,
		Completed: r.Completed,
	}
}

// updateReq is the body of PUT /api/tasks/:id. All fields are
// optional; absent fields are left untouched.
type updateReq struct {
	ID        string  `json:"-"`
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Category  *string `json:"category"`
	Color     *string `json:"color"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) toInput() scheduler.UpdateInput {
	return scheduler.UpdateInput{
		ID:        r.ID,
		Title:     r.Title,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Category:  r.Category,
		Color:     r.Color,
		Completed: r.Completed,
	}
}
