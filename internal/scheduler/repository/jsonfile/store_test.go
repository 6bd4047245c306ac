package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

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

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(mockLogger{}, filepath.Join(t.TempDir(), "tasks.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil, want empty collection")
	}
	if len(got) != 0 {
		t.Errorf("Load returned %d tasks, want 0", len(got))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tasks := []model.Task{
		{
			ID: "t1", Title: "Team Meeting", Date: "2026-01-05",
			StartTime: "17:00", EndTime: "17:30",
			Category: model.CategoryWork, Color: "bg-blue-500",
			AIGenerated: true,
		},
		{
			ID: "t2", Title: "Weekly Sync", Date: "2026-01-07",
			Category: model.CategoryWork, Color: "bg-blue-500",
			Repeating: true, RepeatDays: []string{"monday", "wednesday"},
		},
	}

	if err := s.Save(ctx, tasks); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d tasks, want 2", len(got))
	}
	if !reflect.DeepEqual(got[0], tasks[0]) {
		t.Errorf("task 0 changed across roundtrip:\n got %+v\nwant %+v", got[0], tasks[0])
	}
	if got[1].Repeating != true || len(got[1].RepeatDays) != 2 {
		t.Errorf("recurrence fields lost: %+v", got[1])
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt file loaded %d tasks, want 0", len(got))
	}
}

func TestUpdateAppendPersists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		return append(tasks, model.Task{ID: "t1", Title: "First"}), nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Update returned %d tasks, want 1", len(got))
	}

	// A fresh store over the same file sees the write.
	reopened := New(mockLogger{}, s.path)
	loaded, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "t1" {
		t.Errorf("reopened store = %+v", loaded)
	}
}

func TestUpdateFnErrorAbortsWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []model.Task{{ID: "t1"}}); err != nil {
		t.Fatal(err)
	}

	wantErr := fmt.Errorf("reject")
	_, err := s.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("err = %v, want fn error unchanged", err)
	}

	got, _ := s.Load(ctx)
	if len(got) != 1 {
		t.Errorf("aborted update still changed store: %+v", got)
	}
}

func TestUpdateConcurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(ctx, func(tasks []model.Task) ([]model.Task, error) {
				return append(tasks, model.Task{ID: fmt.Sprintf("t%d", i)}), nil
			})
			if err != nil {
				t.Errorf("writer %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != writers {
		t.Errorf("store holds %d tasks after %d concurrent appends", len(got), writers)
	}

	seen := map[string]bool{}
	for _, task := range got {
		if seen[task.ID] {
			t.Errorf("duplicate task %s", task.ID)
		}
		seen[task.ID] = true
	}
}
