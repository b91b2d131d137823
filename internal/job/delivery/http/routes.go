package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the board's pass-through endpoints. These live at
// the root (not under /api/v1) because the front end's paths predate
// this service and are reproduced as-is.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/clients", h.ListClients)
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/job/:number", h.JobDetail)
}
