package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"privassistant/internal/model"
)

// lockRetryDelay is the poll interval while waiting for the file
// lock.
const lockRetryDelay = 50 * time.Millisecond

// Load returns the stored collection. A missing, unreadable or
// corrupt file loads as an empty collection — the store contract has
// no read-failure channel.
func (s *Store) Load(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

// Save replaces the stored collection in one atomic write.
func (s *Store) Save(ctx context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(tasks)
}

// Update runs fn against the current collection and persists the
// result while holding both the process mutex and the file lock.
func (s *Store) Update(ctx context.Context, fn func(tasks []model.Task) ([]model.Task, error)) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("store lock unavailable: %s", s.fl.Path())
	}
	defer func() {
		if unlockErr := s.fl.Unlock(); unlockErr != nil {
			s.l.Warnf(ctx, "jsonfile: release store lock: %v", unlockErr)
		}
	}()

	updated, err := fn(s.load(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) load(ctx context.Context) []model.Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.l.Warnf(ctx, "jsonfile: read %s: %v", s.path, err)
		}
		return []model.Task{}
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.l.Warnf(ctx, "jsonfile: corrupt store %s, loading empty: %v", s.path, err)
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks
}

// save writes to a temp file and renames it over the store file, so a
// crash mid-write never leaves a half-written collection behind.
func (s *Store) save(tasks []model.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
