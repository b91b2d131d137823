package usecase

import (
	"context"

	"github.com/MGhunch/dot-hub-api/internal/job"
	"github.com/MGhunch/dot-hub-api/internal/model"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// JobDetail looks up one job by its exact job number.
func (uc *implUseCase) JobDetail(ctx context.Context, jobNumber string) (model.Job, error) {
	page, err := uc.store.List(ctx, tableProjects, airtable.SelectOptions{
		FilterByFormula: airtable.Equals(fieldJobNumber, jobNumber),
		MaxRecords:      1,
	}, "")
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.JobDetail.List: %v", err)
		return model.Job{}, err
	}
	if len(page.Records) == 0 {
		return model.Job{}, job.ErrJobNotFound
	}
	return jobFromRecord(page.Records[0]), nil
}
