package httpserver

import (
	"context"

	"privassistant/internal/middleware"
	schedulerHTTP "privassistant/internal/scheduler/delivery/http"
	"privassistant/internal/scheduler/engine"
	schedulerUC "privassistant/internal/scheduler/usecase"
)

// setupSchedulerDomain initializes the scheduler domain and registers
// its routes:
//  1. Extraction engine
//  2. UseCase over the task store
//  3. HTTP handler
//  4. Routes: /generate-tasks and /api/tasks
func (srv *HTTPServer) setupSchedulerDomain(ctx context.Context, mw middleware.Middleware) {
	eng := engine.New()
	uc := schedulerUC.New(srv.l, eng, srv.store)
	h := schedulerHTTP.New(srv.l, uc)

	schedulerHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Scheduler domain registered")
}
