package usecase

import (
	"context"
	"sort"

	"github.com/MGhunch/dot-hub-api/internal/model"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// ListClients derives the client picker list from the Projects table:
// every distinct client with at least one active job, alphabetical,
// with a short code derived from the name.
func (uc *implUseCase) ListClients(ctx context.Context) ([]model.ClientRef, error) {
	records, err := uc.store.ListAll(ctx, tableProjects, airtable.SelectOptions{
		FilterByFormula: activeJobsFilter(),
		Fields:          []string{fieldClient},
	})
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.ListClients.ListAll: %v", err)
		return nil, err
	}

	seen := make(map[string]struct{})
	clients := make([]model.ClientRef, 0)
	for _, rec := range records {
		name := rec.String(fieldClient)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		clients = append(clients, model.ClientRef{Code: clientCode(name), Name: name})
	}

	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}
