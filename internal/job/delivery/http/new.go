package http

import (
	"github.com/gin-gonic/gin"

	"github.com/MGhunch/dot-hub-api/internal/job"
	pkgLog "github.com/MGhunch/dot-hub-api/pkg/log"
)

// Handler is the public interface for the job HTTP delivery layer.
type Handler interface {
	ListClients(c *gin.Context)
	ListJobs(c *gin.Context)
	JobDetail(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc job.UseCase
}

// New creates a new HTTP handler for the job domain.
func New(l pkgLog.Logger, uc job.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
