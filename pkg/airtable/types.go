package airtable

import "net/http"

// Config holds the settings for the Airtable client.
type Config struct {
	APIKey     string
	BaseID     string
	BaseURL    string // defaults to DefaultBaseURL
	HTTPClient *http.Client
}

// Validate checks required config fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseID == "" {
		return ErrMissingBaseID
	}
	return nil
}

// Record is a single Airtable record.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime,omitempty"`
}

// String returns the named field as a string, or "" when absent or
// not a string.
func (r Record) String(field string) string {
	if v, ok := r.Fields[field].(string); ok {
		return v
	}
	return ""
}

// Sort is a single sort directive.
type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

// SelectOptions narrows a table read.
type SelectOptions struct {
	FilterByFormula string
	Fields          []string
	Sort            []Sort
	MaxRecords      int
}

// Page is one page of records plus the continuation token; an empty
// Offset means the listing is complete.
type Page struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}
