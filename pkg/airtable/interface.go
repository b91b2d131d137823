package airtable

import "context"

// IClient defines the interface for the Airtable record store client.
// Implementations are safe for concurrent use.
type IClient interface {
	// List fetches one page of records from a table. Pass the offset
	// token from the previous page to continue, or "" for the first page.
	List(ctx context.Context, table string, opts SelectOptions, offset string) (*Page, error)

	// ListAll follows continuation tokens until the table read is
	// exhausted and returns every matching record.
	ListAll(ctx context.Context, table string, opts SelectOptions) ([]Record, error)

	// UpdateRecord patches individual fields on one record.
	UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) (*Record, error)
}

// New creates a new Airtable client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
