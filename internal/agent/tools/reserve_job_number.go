package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// ReserveJobNumberTool reserves the next job number for a client and
// advances the stored counter. This is the one tool with a write side
// effect and it is not idempotent: two calls reserve two numbers.
// The read-then-write has no compare-and-swap, so concurrent
// reservations for the same client can race.
type ReserveJobNumberTool struct {
	store airtable.IClient
}

// NewReserveJobNumberTool creates a new job number reservation tool.
func NewReserveJobNumberTool(store airtable.IClient) agent.Tool {
	return &ReserveJobNumberTool{store: store}
}

func (t *ReserveJobNumberTool) Name() string {
	return "reserve_job_number"
}

func (t *ReserveJobNumberTool) Description() string {
	return "Reserve and lock in the next job number for a client. This WRITES to the database - only use when the user confirms they want to reserve a number."
}

func (t *ReserveJobNumberTool) Parameters() map[string]interface{} {
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

func (t *ReserveJobNumberTool) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
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

	record := page.Records[0]
	clientName := stringField(record.Fields, fieldClientName)
	if clientName == "" {
		clientName = clientCode
	}

	nextNumStr := record.String(fieldNextJobNumber)
	if nextNumStr == "" {
		return nil, fmt.Errorf("no job number sequence configured for %s", clientCode)
	}
	nextNum, err := strconv.Atoi(nextNumStr)
	if err != nil {
		return nil, fmt.Errorf("invalid job number format: %s", nextNumStr)
	}

	reserved := fmt.Sprintf("%s %03d", clientCode, nextNum)
	newNext := fmt.Sprintf("%03d", nextNum+1)

	if _, err := t.store.UpdateRecord(ctx, tableClients, record.ID, map[string]any{
		fieldNextJobNumber: newNext,
	}); err != nil {
		return nil, fmt.Errorf("failed to advance job number counter: %w", err)
	}

	return map[string]interface{}{
		"success":           true,
		"clientCode":        clientCode,
		"clientName":        clientName,
		"reservedJobNumber": reserved,
		"nextJobNumber":     newNext,
	}, nil
}
