package jsonfile

import (
	"sync"

	"github.com/gofrs/flock"

	"privassistant/pkg/log"
)

// Store persists tasks as a pretty-printed JSON array on disk,
// matching the historical tasks.json layout. A process-level mutex
// serializes concurrent requests; a file lock serializes concurrent
// processes sharing the same store file.
type Store struct {
	l    log.Logger
	path string
	mu   sync.Mutex
	fl   *flock.Flock
}

// New creates a Store backed by the JSON file at path. The file is
// created lazily on first save.
func New(l log.Logger, path string) *Store {
	return &Store{
		l:    l,
		path: path,
		fl:   flock.New(path + ".lock"),
	}
}
