package http

import (
	"github.com/gin-gonic/gin"

	"github.com/MGhunch/dot-hub-api/internal/assistant"
	pkgLog "github.com/MGhunch/dot-hub-api/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
	ClearSession(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
