package repository

import (
	"context"

	"privassistant/internal/model"
)

// Store owns durable task state. Load returns an empty collection
// when no prior state exists or the backing data cannot be read.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error

	// Update runs fn against the current collection and persists the
	// result, all under the store lock, so concurrent
	// read-modify-write cycles cannot drop each other's writes. The
	// persisted collection is returned. An error from fn aborts the
	// write and is returned unchanged.
	Update(ctx context.Context, fn func(tasks []model.Task) ([]model.Task, error)) ([]model.Task, error)
}
