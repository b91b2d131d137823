package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MGhunch/dot-hub-api/internal/assistant"
)

// Ask godoc
// @Summary     Ask Dot a question
// @Description Runs one conversational turn: resolves the question against the record store, optionally via model tool calls, and returns a structured response.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question, known clients and optional session id"
// @Success     200 {object} askResp
// @Failure     400 {object} errorResp "No question provided"
// @Failure     500 {object} errorResp
// @Router      /ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: askErrorMessage(err)})
		return
	}

	output, err := h.uc.ProcessQuestion(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuestion: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, assistant.ErrEmptyQuestion) {
			status = http.StatusBadRequest
		}
		c.JSON(status, errorResp{Error: askErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, newAskResp(output))
}

// ClearSession godoc
// @Summary     Forget a conversation
// @Description Drops the session's stored history. Clearing an unknown or absent session still succeeds.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body clearSessionReq true "Session to clear"
// @Success     200 {object} clearSessionResp
// @Router      /clear-session [POST]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processClearSessionReq(c)
	if req.SessionID != "" {
		h.uc.ClearSession(ctx, req.SessionID)
	}

	c.JSON(http.StatusOK, clearSessionResp{Status: "cleared"})
}

// askErrorMessage renders domain errors in the wording the front end
// shows users.
func askErrorMessage(err error) string {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuestion):
		return "No question provided"
	case errors.Is(err, assistant.ErrNotConfigured):
		return "Model API not configured"
	default:
		return err.Error()
	}
}
