package usecase

import (
	"github.com/MGhunch/dot-hub-api/internal/model"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// Projects table layout in the record store.
const (
	tableProjects = "Projects"

	fieldJobNumber   = "Job no."
	fieldProjectName = "Project Name"
	fieldDescription = "Description"
	fieldClient      = "Client"
	fieldStatus      = "Job Status"
	fieldStage       = "Stage"
	fieldDueDate     = "Update due"
	fieldLiveDate    = "Live date"
	fieldWithClient  = "With client"
	fieldOwner       = "Owner"
	fieldChannelLink = "Teams link"
)

// jobFromRecord maps a raw Projects record into the domain model.
func jobFromRecord(rec airtable.Record) model.Job {
	withClient, _ := rec.Fields[fieldWithClient].(bool)
	return model.Job{
		RecordID:    rec.ID,
		JobNumber:   rec.String(fieldJobNumber),
		Name:        rec.String(fieldProjectName),
		Description: rec.String(fieldDescription),
		Client:      rec.String(fieldClient),
		Status:      rec.String(fieldStatus),
		Stage:       rec.String(fieldStage),
		DueDate:     rec.String(fieldDueDate),
		LiveDate:    rec.String(fieldLiveDate),
		WithClient:  withClient,
		Owner:       rec.String(fieldOwner),
		ChannelLink: rec.String(fieldChannelLink),
	}
}

// activeJobsFilter matches every job that is not completed.
func activeJobsFilter() string {
	return airtable.NotEquals(fieldStatus, string(model.JobStatusCompleted))
}
