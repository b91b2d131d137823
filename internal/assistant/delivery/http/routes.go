package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints. The rate limiter applies to
// /ask only: every ask is at least one model round-trip, while
// clearing a session is free.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, askMiddleware ...gin.HandlerFunc) {
	rg.POST("/ask", append(askMiddleware, gin.HandlerFunc(h.Ask))...)
	rg.POST("/clear-session", h.ClearSession)
}
