package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "github.com/MGhunch/dot-hub-api/internal/assistant/delivery/http"
	jobHTTP "github.com/MGhunch/dot-hub-api/internal/job/delivery/http"
	"github.com/MGhunch/dot-hub-api/internal/middleware"
	"github.com/MGhunch/dot-hub-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	assistantHandler assistantHTTP.Handler
	jobHandler       jobHTTP.Handler
	mw               middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	AssistantHandler assistantHTTP.Handler
	JobHandler       jobHTTP.Handler
	Middleware       middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		assistantHandler: cfg.AssistantHandler,
		jobHandler:       cfg.JobHandler,
		mw:               cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
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
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.jobHandler == nil {
		return errors.New("job handler is required")
	}
	return nil
}
