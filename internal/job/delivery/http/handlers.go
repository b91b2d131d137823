package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MGhunch/dot-hub-api/internal/job"
)

// The board endpoints return raw JSON bodies rather than the standard
// response envelope. The front end consumed these shapes before this
// service existed and they are reproduced exactly.

// ListClients godoc
// @Summary     List clients with active jobs
// @Description Returns every distinct client that has at least one active job, with a derived short code.
// @Tags        Jobs
// @Produce     json
// @Success     200 {array}  model.ClientRef
// @Failure     500 {object} errorResp
// @Router      /clients [GET]
func (h *handler) ListClients(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.uc.ListClients(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListClients: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ListJobs godoc
// @Summary     List active jobs
// @Description Returns active jobs, optionally narrowed to clients whose name contains the substring, sorted by job number.
// @Tags        Jobs
// @Produce     json
// @Param       client query string false "Client name substring"
// @Success     200 {array}  job.Summary
// @Failure     500 {object} errorResp
// @Router      /jobs [GET]
func (h *handler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.uc.ListJobs(ctx, c.Query("client"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListJobs: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// JobDetail godoc
// @Summary     Get one job
// @Description Returns the full job record for an exact job number, e.g. "SKY 017".
// @Tags        Jobs
// @Produce     json
// @Param       number path string true "Job number"
// @Success     200 {object} model.Job
// @Failure     404 {object} errorResp
// @Failure     500 {object} errorResp
// @Router      /job/{number} [GET]
func (h *handler) JobDetail(c *gin.Context) {
	ctx := c.Request.Context()

	detail, err := h.uc.JobDetail(ctx, c.Param("number"))
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, errorResp{Error: "Job not found"})
			return
		}
		h.l.Errorf(ctx, "uc.JobDetail: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
