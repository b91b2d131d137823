package model

// JobStatus is the project status enum used in the Projects table.
type JobStatus string

const (
	JobStatusIncoming   JobStatus = "Incoming"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusOnHold     JobStatus = "On Hold"
	JobStatusCompleted  JobStatus = "Completed"
)

// Job is a project record. Read-only from this service's point of
// view; only the job-number counter on the owning client is ever
// written, and that happens through the reservation tool.
type Job struct {
	RecordID    string `json:"recordId"`
	JobNumber   string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Client      string `json:"client,omitempty"`
	Status      string `json:"status"`
	Stage       string `json:"stage"`
	DueDate     string `json:"dueDate,omitempty"`
	LiveDate    string `json:"liveDate,omitempty"`
	WithClient  bool   `json:"withClient,omitempty"`
	Owner       string `json:"owner,omitempty"`
	ChannelLink string `json:"channelLink,omitempty"`
}
