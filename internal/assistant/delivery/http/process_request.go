package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds and validates the ask request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClearSessionReq binds the clear-session body. A missing or
// malformed body clears nothing but is still not an error.
func (h *handler) processClearSessionReq(c *gin.Context) clearSessionReq {
	var req clearSessionReq
	_ = c.ShouldBindJSON(&req)
	return req
}
