package tools_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGhunch/dot-hub-api/internal/agent/tools"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
)

// mockStore implements airtable.IClient for tool tests.
type mockStore struct {
	pages      map[string]*airtable.Page // keyed by offset, "" = first page
	listErr    error
	lastFilter string
	lastTable  string

	updateErr     error
	updatedTable  string
	updatedID     string
	updatedFields map[string]any
}

func (m *mockStore) List(ctx context.Context, table string, opts airtable.SelectOptions, offset string) (*airtable.Page, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.lastTable = table
	m.lastFilter = opts.FilterByFormula
	page, ok := m.pages[offset]
	if !ok {
		return &airtable.Page{}, nil
	}
	return page, nil
}

func (m *mockStore) ListAll(ctx context.Context, table string, opts airtable.SelectOptions) ([]airtable.Record, error) {
	var records []airtable.Record
	offset := ""
	for {
		page, err := m.List(ctx, table, opts, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (m *mockStore) UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) (*airtable.Record, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updatedTable = table
	m.updatedID = recordID
	m.updatedFields = fields
	return &airtable.Record{ID: recordID, Fields: fields}, nil
}

func clientPage(fields map[string]any) map[string]*airtable.Page {
	return map[string]*airtable.Page{
		"": {Records: []airtable.Record{{ID: "recCLIENT1", Fields: fields}}},
	}
}

func TestSearchPeopleTool(t *testing.T) {
	ctx := context.Background()

	t.Run("Paginates And Filters By Term", func(t *testing.T) {
		store := &mockStore{pages: map[string]*airtable.Page{
			"": {
				Records: []airtable.Record{
					{ID: "rec1", Fields: map[string]any{"Name": "Sarah Jones", "Email Address": "sarah@sky.co.nz", "Phone Number": "021 111 111", "Client Link": "SKY"}},
					{ID: "rec2", Fields: map[string]any{"Full name": "Mike Smith", "Email Address": "mike@tower.co.nz", "Client Link": "TOW"}},
				},
				Offset: "page2",
			},
			"page2": {
				Records: []airtable.Record{
					{ID: "rec3", Fields: map[string]any{"Name": "Sara Connor", "Email Address": "sara@fisherfunds.co.nz", "Client Link": "FIS"}},
					{ID: "rec4", Fields: map[string]any{"Email Address": "nameless@sky.co.nz"}}, // no name, skipped
				},
			},
		}}

		tool := tools.NewSearchPeopleTool(store)
		out, err := tool.Execute(ctx, map[string]interface{}{"search_term": "SARA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["count"] != 2 {
			t.Errorf("expected 2 matches across pages, got %v", out["count"])
		}
		people := out["people"].([]map[string]interface{})
		if people[0]["name"] != "Sarah Jones" || people[1]["name"] != "Sara Connor" {
			t.Errorf("unexpected people payload: %v", people)
		}
	})

	t.Run("Client Code Narrows The Filter Formula", func(t *testing.T) {
		store := &mockStore{pages: map[string]*airtable.Page{}}
		tool := tools.NewSearchPeopleTool(store)

		if _, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "AND({Active} = TRUE(), {Client Link} = 'SKY')"
		if store.lastFilter != want {
			t.Errorf("expected filter %q, got %q", want, store.lastFilter)
		}
	})

	t.Run("Store Error Surfaces", func(t *testing.T) {
		store := &mockStore{listErr: errors.New("airtable down")}
		tool := tools.NewSearchPeopleTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Errorf("expected error when store fails")
		}
	})
}

func TestGetClientDetailTool(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes Currency Variants", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":             "Sky TV",
			"Client code":         "SKY",
			"Current Quarter":     "Q3",
			"Monthly Committed":   float64(10000),
			"Quarterly Committed": "$30,000",
			"This month":          "6200",
			"Rollover Credit":     []any{float64(1500)},
			"Next Job #":          "017",
		})}

		tool := tools.NewGetClientDetailTool(store)
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["monthlyCommitted"] != float64(10000) {
			t.Errorf("number variant: got %v", out["monthlyCommitted"])
		}
		if out["quarterlyCommitted"] != float64(30000) {
			t.Errorf("currency string variant: got %v", out["quarterlyCommitted"])
		}
		if out["thisMonth"] != float64(6200) {
			t.Errorf("plain string variant: got %v", out["thisMonth"])
		}
		if out["rolloverCredit"] != float64(1500) {
			t.Errorf("singleton list variant: got %v", out["rolloverCredit"])
		}
		if out["nextJobNumber"] != "017" {
			t.Errorf("unexpected next job number: %v", out["nextJobNumber"])
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		store := &mockStore{pages: map[string]*airtable.Page{}}
		tool := tools.NewGetClientDetailTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{"client_code": "ZZZ"}); err == nil {
			t.Errorf("expected not-found error")
		}
	})

	t.Run("Missing Client Code", func(t *testing.T) {
		store := &mockStore{pages: map[string]*airtable.Page{}}
		tool := tools.NewGetClientDetailTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Errorf("expected error for missing client_code")
		}
	})
}

func TestGetSpendSummaryTool(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("This Month", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":           "Sky TV",
			"Client code":       "SKY",
			"Monthly Committed": float64(10000),
			"This month":        float64(6200),
		})}

		tool := tools.NewGetSpendSummaryTool(store).WithClock(func() time.Time { return march })
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY", "period": "this_month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["remaining"] != float64(3800) {
			t.Errorf("expected remaining 3800, got %v", out["remaining"])
		}
		if out["percentUsed"] != 62 {
			t.Errorf("expected percentUsed 62, got %v", out["percentUsed"])
		}
		if out["period"] != "March" {
			t.Errorf("expected period March, got %v", out["period"])
		}
	})

	t.Run("Rollover Applies To Configured Quarter", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":           "Sky TV",
			"Client code":       "SKY",
			"Current Quarter":   "Q3",
			"Monthly Committed": float64(10000),
			"Rollover Credit":   float64(2500),
			"Rollover use":      "JAN-MAR",
			"JAN-MAR":           float64(12000),
		})}

		tool := tools.NewGetSpendSummaryTool(store).WithClock(func() time.Time { return march })
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY", "period": "JAN-MAR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["budget"] != float64(32500) {
			t.Errorf("expected budget monthly*3+rollover = 32500, got %v", out["budget"])
		}
		if out["rolloverApplied"] != true {
			t.Errorf("expected rolloverApplied true")
		}
		if out["rolloverAmount"] != float64(2500) {
			t.Errorf("expected rolloverAmount 2500, got %v", out["rolloverAmount"])
		}
	})

	t.Run("Last Quarter Uses Cyclic Table", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":           "Sky TV",
			"Client code":       "SKY",
			"Current Quarter":   "Q1",
			"Monthly Committed": float64(9000),
			"OCT-DEC":           float64(20000),
		})}

		// March → this quarter JAN-MAR → last quarter OCT-DEC.
		tool := tools.NewGetSpendSummaryTool(store).WithClock(func() time.Time { return march })
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY", "period": "last_quarter"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["spent"] != float64(20000) {
			t.Errorf("expected OCT-DEC spend, got %v", out["spent"])
		}
		if out["period"] != "Q4" {
			t.Errorf("expected label Q4 (Q1 wraps back), got %v", out["period"])
		}
	})

	t.Run("Zero Budget Gives Zero Percent", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":     "Sky TV",
			"Client code": "SKY",
			"This month":  float64(500),
		})}

		tool := tools.NewGetSpendSummaryTool(store).WithClock(func() time.Time { return march })
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY", "period": "this_month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out["percentUsed"] != 0 {
			t.Errorf("expected percentUsed 0 on zero budget, got %v", out["percentUsed"])
		}
	})
}

func TestReserveJobNumberTool(t *testing.T) {
	ctx := context.Background()

	t.Run("Reserves And Advances Counter", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":     "Sky TV",
			"Client code": "SKY",
			"Next Job #":  "007",
		})}

		tool := tools.NewReserveJobNumberTool(store)
		out, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out["reservedJobNumber"] != "SKY 007" {
			t.Errorf("expected reserved 'SKY 007', got %v", out["reservedJobNumber"])
		}
		if out["nextJobNumber"] != "008" {
			t.Errorf("expected next '008', got %v", out["nextJobNumber"])
		}
		if store.updatedID != "recCLIENT1" || store.updatedFields["Next Job #"] != "008" {
			t.Errorf("expected counter persisted as 008, got %v on %s", store.updatedFields, store.updatedID)
		}
	})

	t.Run("Missing Sequence", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":     "Sky TV",
			"Client code": "SKY",
		})}
		tool := tools.NewReserveJobNumberTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"}); err == nil {
			t.Errorf("expected error when no sequence is configured")
		}
	})

	t.Run("Non Numeric Sequence", func(t *testing.T) {
		store := &mockStore{pages: clientPage(map[string]any{
			"Clients":     "Sky TV",
			"Client code": "SKY",
			"Next Job #":  "ABC",
		})}
		tool := tools.NewReserveJobNumberTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"}); err == nil {
			t.Errorf("expected error for non-numeric sequence")
		}
	})

	t.Run("Write Failure Surfaces", func(t *testing.T) {
		store := &mockStore{
			pages:     clientPage(map[string]any{"Clients": "Sky TV", "Client code": "SKY", "Next Job #": "007"}),
			updateErr: errors.New("airtable down"),
		}
		tool := tools.NewReserveJobNumberTool(store)
		if _, err := tool.Execute(ctx, map[string]interface{}{"client_code": "SKY"}); err == nil {
			t.Errorf("expected error when counter write fails")
		}
	})
}
