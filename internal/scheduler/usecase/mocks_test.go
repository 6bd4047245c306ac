package usecase

import (
	"context"

	"privassistant/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockStore is an in-memory Store with fault injection.
type mockStore struct {
	tasks   []model.Task
	loadErr error
	saveErr error
	updates int
}

func (m *mockStore) Load(_ context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Task(nil), m.tasks...), nil
}

func (m *mockStore) Save(_ context.Context, tasks []model.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = tasks
	return nil
}

func (m *mockStore) Update(_ context.Context, fn func(tasks []model.Task) ([]model.Task, error)) ([]model.Task, error) {
	m.updates++
	next, err := fn(append([]model.Task(nil), m.tasks...))
	if err != nil {
		return nil, err
	}
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.tasks = next
	return next, nil
}
