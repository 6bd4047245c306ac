package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"privassistant/internal/model"
	"privassistant/internal/scheduler"
	"privassistant/internal/scheduler/engine"
)

// List returns the full store contents.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	return uc.store.Load(ctx)
}

// Create persists one manually authored task.
func (uc *implUseCase) Create(ctx context.Context, input scheduler.CreateInput) (model.Task, error) {
	category := model.Category(input.Category)

	color := input.Color
	if color == "" {
		color = engine.ColorFor(category)
	}

	t := model.Task{
		ID:        uuid.NewString(),
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Category:  category,
		Date:      input.Date,
		Color:     color,
		Completed: input.Completed,
	}

	if _, err := uc.store.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		return append(tasks, t), nil
	}); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", scheduler.ErrStoreSave, err)
	}

	uc.l.Infof(ctx, "Create: task=%s title=%q", t.ID, t.Title)
	return t, nil
}

// Update applies a partial update to an existing task. The ID is
// preserved.
func (uc *implUseCase) Update(ctx context.Context, input scheduler.UpdateInput) (model.Task, error) {
	var updated model.Task

	_, err := uc.store.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		for i := range tasks {
			if tasks[i].ID != input.ID {
				continue
			}
			applyUpdate(&tasks[i], input)
			updated = tasks[i]
			return tasks, nil
		}
		return nil, scheduler.ErrTaskNotFound
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrTaskNotFound) {
			return model.Task{}, err
		}
		return model.Task{}, fmt.Errorf("%w: %v", scheduler.ErrStoreSave, err)
	}

	return updated, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.store.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return nil, scheduler.ErrTaskNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", scheduler.ErrStoreSave, err)
	}
	return nil
}

func applyUpdate(t *model.Task, input scheduler.UpdateInput) {
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Date != nil {
		t.Date = *input.Date
	}
	if input.StartTime != nil {
		t.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		t.EndTime = *input.EndTime
	}
	if input.Category != nil {
		t.Category = model.Category(*input.Category)
	}
	if input.Color != nil {
		t.Color = *input.Color
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}
}
