package usecase

import (
	"time"

	"privassistant/internal/scheduler/engine"
	"privassistant/internal/scheduler/repository"
	pkgLog "privassistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	engine *engine.Engine
	store  repository.Store
	now    func() time.Time
}

// New creates a scheduler UseCase instance.
func New(l pkgLog.Logger, eng *engine.Engine, store repository.Store) *implUseCase {
	return &implUseCase{
		l:      l,
		engine: eng,
		store:  store,
		now:    time.Now,
	}
}

// WithNow overrides the clock source. The pipeline samples it exactly
// once per request; tests pin it to a fixed instant.
func (uc *implUseCase) WithNow(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
