package usecase

import (
	"context"
	"sort"

	"github.com/MGhunch/dot-hub-api/internal/job"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// ListJobs returns active jobs for the board, optionally narrowed to
// clients whose name contains the given substring.
func (uc *implUseCase) ListJobs(ctx context.Context, clientSubstring string) ([]job.Summary, error) {
	filter := activeJobsFilter()
	if clientSubstring != "" {
		filter = airtable.And(filter, airtable.Contains(fieldClient, clientSubstring))
	}

	records, err := uc.store.ListAll(ctx, tableProjects, airtable.SelectOptions{
		FilterByFormula: filter,
		Fields:          []string{fieldJobNumber, fieldProjectName, fieldStatus, fieldStage},
	})
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.ListJobs.ListAll: %v", err)
		return nil, err
	}

	summaries := make([]job.Summary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, job.Summary{
			ID:       rec.String(fieldJobNumber),
			Name:     rec.String(fieldProjectName),
			Status:   rec.String(fieldStatus),
			Stage:    rec.String(fieldStage),
			RecordID: rec.ID,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return jobNumberLess(summaries[i].ID, summaries[j].ID)
	})
	return summaries, nil
}
