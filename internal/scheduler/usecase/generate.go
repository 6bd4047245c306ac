package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"privassistant/internal/model"
	"privassistant/internal/scheduler"
	"privassistant/internal/scheduler/engine"
)

// Generate runs the extraction pipeline against the prompt and
// appends the resulting batch to the store in one locked write. Only
// the new batch is returned, never the full store contents. An empty
// batch skips the store write entirely.
func (uc *implUseCase) Generate(ctx context.Context, input scheduler.GenerateInput) ([]model.Task, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, scheduler.ErrEmptyPrompt
	}

	// Sampled once; recurrence detection and expansion see the same
	// reference for the whole request.
	now := uc.now()

	candidates := uc.engine.Extract(input.Prompt, now)

	batch := make([]model.Task, 0, len(candidates))
	for _, cand := range candidates {
		batch = append(batch, materialize(cand))
	}

	uc.l.Infof(ctx, "Generate: prompt_len=%d tasks=%d", len(input.Prompt), len(batch))

	if len(batch) == 0 {
		return batch, nil
	}

	if _, err := uc.store.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		return append(tasks, batch...), nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduler.ErrStoreSave, err)
	}

	return batch, nil
}

// materialize stamps identity and provenance onto an extracted
// candidate.
func materialize(cand engine.Candidate) model.Task {
	return model.Task{
		ID:          uuid.NewString(),
		Title:       cases.Title(language.English).String(cand.Name),
		StartTime:   cand.StartTime,
		EndTime:     cand.EndTime,
		Category:    cand.Category,
		Date:        cand.Date,
		Color:       cand.Color,
		Completed:   false,
		AIGenerated: true,
		Repeating:   cand.Repeating,
		RepeatDays:  cand.RepeatDays,
	}
}
