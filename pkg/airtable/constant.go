package airtable

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the Airtable REST API endpoint.
	DefaultBaseURL = "https://api.airtable.com/v0"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

var (
	ErrMissingAPIKey = errors.New("airtable: api key is required")
	ErrMissingBaseID = errors.New("airtable: base id is required")
)
