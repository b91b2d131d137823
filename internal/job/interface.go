package job

import (
	"context"

	"github.com/MGhunch/dot-hub-api/internal/model"
)

// UseCase defines the business logic interface for the job domain.
// This is the pass-through path: record store reads only, no model
// involvement.
type UseCase interface {
	// ListClients returns the distinct clients that have at least one
	// active job, with derived short codes.
	ListClients(ctx context.Context) ([]model.ClientRef, error)

	// ListJobs returns active jobs whose client contains the given
	// substring (case-insensitive), sorted by job number ascending. An
	// empty substring returns all active jobs.
	ListJobs(ctx context.Context, clientSubstring string) ([]Summary, error)

	// JobDetail returns the job with the exact job number, or
	// ErrJobNotFound.
	JobDetail(ctx context.Context, jobNumber string) (model.Job, error)
}
