package assistant

import "github.com/MGhunch/dot-hub-api/internal/model"

// AskInput is one user question plus the front end's current context.
type AskInput struct {
	Question  string
	Clients   []model.ClientRef
	SessionID string // empty means start a new session
}

// AskOutput is the result of one processed turn.
type AskOutput struct {
	SessionID string
	Parsed    StructuredResponse
}

// StructuredResponse is the contract returned to the front end. When
// the model's reply cannot be parsed, a degraded response still honors
// this shape: the raw text becomes Message and the other fields stay
// nil.
type StructuredResponse struct {
	Message    string      `json:"message"`
	Jobs       *JobsFilter `json:"jobs"`
	NextPrompt *string     `json:"nextPrompt"`
}

// JobsFilter tells the front end which preloaded jobs to display.
type JobsFilter struct {
	Show       bool     `json:"show"`
	Client     *string  `json:"client,omitempty"`
	Status     *string  `json:"status,omitempty"`
	DateRange  *string  `json:"dateRange,omitempty"`
	WithClient *bool    `json:"withClient,omitempty"`
	Search     []string `json:"search,omitempty"`
}
