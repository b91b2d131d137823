package tools

import (
	"context"
	"fmt"

	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// GetClientDetailTool fetches one client's commercial setup.
type GetClientDetailTool struct {
	store airtable.IClient
}

// NewGetClientDetailTool creates a new client detail tool.
func NewGetClientDetailTool(store airtable.IClient) agent.Tool {
	return &GetClientDetailTool{store: store}
}

func (t *GetClientDetailTool) Name() string {
	return "get_client_detail"
}

func (t *GetClientDetailTool) Description() string {
	return "Get detailed information about a client including their budget, quarter, commercial setup, and next job number."
}

func (t *GetClientDetailTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"client_code": map[string]interface{}{
				"type":        "string",
				"description": "The client code (e.g., 'SKY', 'TOW', 'ONE')",
			},
		},
		"required": []string{"client_code"},
	}
}

func (t *GetClientDetailTool) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	clientCode := stringArg(args, "client_code")
	if clientCode == "" {
		return nil, fmt.Errorf("client_code is required")
	}

	page, err := t.store.List(ctx, tableClients, airtable.SelectOptions{
		FilterByFormula: airtable.Equals(fieldClientCode, clientCode),
		MaxRecords:      1,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}
	if len(page.Records) == 0 {
		return nil, fmt.Errorf("client %s not found", clientCode)
	}

	fields := page.Records[0].Fields
	return map[string]interface{}{
		"code":               clientCode,
		"name":               stringField(fields, fieldClientName),
		"yearEnd":            stringField(fields, fieldYearEnd),
		"currentQuarter":     stringField(fields, fieldCurrentQuarter),
		"monthlyCommitted":   parseCurrency(fields[fieldMonthlyCommitted]),
		"quarterlyCommitted": parseCurrency(fields[fieldQuarterlyCommit]),
		"thisMonth":          parseCurrency(fields[fieldThisMonth]),
		"thisQuarter":        parseCurrency(fields[fieldThisQuarter]),
		"rolloverCredit":     parseCurrency(fields[fieldRolloverCredit]),
		"nextJobNumber":      stringField(fields, fieldNextJobNumber),
	}, nil
}
