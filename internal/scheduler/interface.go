package scheduler

import (
	"context"

	"privassistant/internal/model"
)

// UseCase defines the business logic interface for the scheduler
// domain.
type UseCase interface {
	// Generate extracts schedulable tasks from a natural-language
	// prompt, appends them to the store in one locked write, and
	// returns only the newly generated batch.
	Generate(ctx context.Context, input GenerateInput) ([]model.Task, error)

	// List returns the full store contents.
	List(ctx context.Context) ([]model.Task, error)

	// Create persists one manually authored task.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, input UpdateInput) (model.Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id string) error

	// ExportCSV, ExportICS and ExportPDF render the full store
	// contents as downloadable documents.
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportICS(ctx context.Context) ([]byte, error)
	ExportPDF(ctx context.Context) ([]byte, error)
}
