package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (IClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		APIKey:  "key-123",
		BaseID:  "appBASE",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, srv
}

func TestNew(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := New(Config{BaseID: "appBASE"})
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("Expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("Missing Base ID", func(t *testing.T) {
		_, err := New(Config{APIKey: "key"})
		if !errors.Is(err, ErrMissingBaseID) {
			t.Errorf("Expected ErrMissingBaseID, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Request Shape", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.Query()
			json.NewEncoder(w).Encode(Page{Records: []Record{{ID: "rec1"}}})
		})

		page, err := client.List(ctx, "Projects", SelectOptions{
			FilterByFormula: "{Active} = TRUE()",
			Fields:          []string{"Name", "Status"},
			MaxRecords:      5,
		}, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Records) != 1 || page.Records[0].ID != "rec1" {
			t.Errorf("Unexpected page: %+v", page)
		}

		if gotPath != "/appBASE/Projects" {
			t.Errorf("Path = %q", gotPath)
		}
		if gotAuth != "Bearer key-123" {
			t.Errorf("Authorization = %q", gotAuth)
		}
		if got := gotQuery["filterByFormula"]; len(got) != 1 || got[0] != "{Active} = TRUE()" {
			t.Errorf("filterByFormula = %v", got)
		}
		if got := gotQuery["fields[]"]; len(got) != 2 || got[0] != "Name" || got[1] != "Status" {
			t.Errorf("fields[] = %v", got)
		}
		if got := gotQuery["maxRecords"]; len(got) != 1 || got[0] != "5" {
			t.Errorf("maxRecords = %v", got)
		}
	})

	t.Run("Sort Params", func(t *testing.T) {
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			json.NewEncoder(w).Encode(Page{})
		})

		_, err := client.List(ctx, "Projects", SelectOptions{
			Sort: []Sort{{Field: "Job no.", Direction: "asc"}},
		}, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if got := gotQuery["sort[0][field]"]; len(got) != 1 || got[0] != "Job no." {
			t.Errorf("sort[0][field] = %v", got)
		}
		if got := gotQuery["sort[0][direction]"]; len(got) != 1 || got[0] != "asc" {
			t.Errorf("sort[0][direction] = %v", got)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error": "INVALID_FILTER_BY_FORMULA"}`))
		})

		_, err := client.List(ctx, "Projects", SelectOptions{}, "")
		if err == nil {
			t.Fatal("Expected error")
		}
		if !strings.Contains(err.Error(), "airtable API list error 422") {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Follows Offset Tokens", func(t *testing.T) {
		var offsets []string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			offset := r.URL.Query().Get("offset")
			offsets = append(offsets, offset)
			switch offset {
			case "":
				json.NewEncoder(w).Encode(Page{Records: []Record{{ID: "rec1"}}, Offset: "tok1"})
			case "tok1":
				json.NewEncoder(w).Encode(Page{Records: []Record{{ID: "rec2"}, {ID: "rec3"}}})
			default:
				t.Errorf("Unexpected offset %q", offset)
			}
		})

		records, err := client.ListAll(ctx, "Projects", SelectOptions{})
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("Expected 3 records, got %d", len(records))
		}
		if records[2].ID != "rec3" {
			t.Errorf("records[2].ID = %q", records[2].ID)
		}
		if len(offsets) != 2 || offsets[1] != "tok1" {
			t.Errorf("Offsets requested: %v", offsets)
		}
	})
}

func TestUpdateRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Patches Fields", func(t *testing.T) {
		var gotMethod, gotPath, gotContentType string
		var gotBody map[string]map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(Record{ID: "recCLIENT1", Fields: map[string]any{"Next Job #": "008"}})
		})

		record, err := client.UpdateRecord(ctx, "Clients", "recCLIENT1", map[string]any{"Next Job #": "008"})
		if err != nil {
			t.Fatalf("UpdateRecord: %v", err)
		}
		if record.String("Next Job #") != "008" {
			t.Errorf("Unexpected record: %+v", record)
		}

		if gotMethod != http.MethodPatch {
			t.Errorf("Method = %q", gotMethod)
		}
		if gotPath != "/appBASE/Clients/recCLIENT1" {
			t.Errorf("Path = %q", gotPath)
		}
		if gotContentType != "application/json" {
			t.Errorf("Content-Type = %q", gotContentType)
		}
		if gotBody["fields"]["Next Job #"] != "008" {
			t.Errorf("Body = %v", gotBody)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.UpdateRecord(ctx, "Clients", "rec1", map[string]any{"x": 1})
		if err == nil || !strings.Contains(err.Error(), "airtable API update error 403") {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestRecordString(t *testing.T) {
	rec := Record{Fields: map[string]any{
		"Name":   "Sara Woods",
		"Count":  float64(3),
		"Linked": []any{"Sky TV"},
	}}
	if got := rec.String("Name"); got != "Sara Woods" {
		t.Errorf("String(Name) = %q", got)
	}
	if got := rec.String("Missing"); got != "" {
		t.Errorf("String(Missing) = %q", got)
	}
}
