package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// SearchPeopleTool finds client contacts by client code and/or a
// name/email search term.
type SearchPeopleTool struct {
	store airtable.IClient
}

// NewSearchPeopleTool creates a new people search tool.
func NewSearchPeopleTool(store airtable.IClient) agent.Tool {
	return &SearchPeopleTool{store: store}
}

func (t *SearchPeopleTool) Name() string {
	return "search_people"
}

func (t *SearchPeopleTool) Description() string {
	return "Search for contacts/people in the database. Use this when asked about client contacts, email addresses, phone numbers, or how many people work at a client."
}

func (t *SearchPeopleTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"client_code": map[string]interface{}{
				"type":        "string",
				"description": "Filter by client code (e.g., 'SKY', 'TOW', 'ONE'). Optional.",
			},
			"search_term": map[string]interface{}{
				"type":        "string",
				"description": "Search for a specific person by name or email. Optional.",
			},
		},
		"required": []string{},
	}
}

func (t *SearchPeopleTool) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	clientCode := stringArg(args, "client_code")
	searchTerm := stringArg(args, "search_term")

	filters := []string{airtable.IsTrue(fieldActive)}
	if clientCode != "" {
		filters = append(filters, airtable.Equals(fieldClientLink, clientCode))
	}

	records, err := t.store.ListAll(ctx, tablePeople, airtable.SelectOptions{
		FilterByFormula: airtable.And(filters...),
	})
	if err != nil {
		return nil, fmt.Errorf("people search failed: %w", err)
	}

	people := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		name := stringField(record.Fields, fieldName, fieldFullName)
		if name == "" {
			continue
		}

		email := record.String(fieldEmail)
		if searchTerm != "" {
			searchable := strings.ToLower(name + " " + email)
			if !strings.Contains(searchable, strings.ToLower(searchTerm)) {
				continue
			}
		}

		people = append(people, map[string]interface{}{
			"name":       name,
			"email":      email,
			"phone":      record.String(fieldPhone),
			"clientCode": record.String(fieldClientLink),
		})
	}

	return map[string]interface{}{
		"count":  len(people),
		"people": people,
	}, nil
}
