package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"privassistant/internal/model"
	"privassistant/internal/scheduler/repository"
	"privassistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Scheduler domain
	store         repository.Store
	rateLimPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment model.Environment

	Store         repository.Store
	RateLimPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		store:         cfg.Store,
		rateLimPerMin: cfg.RateLimPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if !srv.environment.Valid() {
		return errors.New("unknown environment: " + string(srv.environment))
	}
	if srv.store == nil {
		return errors.New("task store is required")
	}
	return nil
}
