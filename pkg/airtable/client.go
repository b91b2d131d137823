package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

type clientImpl struct {
	apiKey     string
	baseID     string
	baseURL    string
	httpClient *http.Client
}

func newClientImpl(cfg Config) *clientImpl {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &clientImpl{
		apiKey:     cfg.APIKey,
		baseID:     cfg.BaseID,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *clientImpl) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

// List fetches one page of records from a table.
func (c *clientImpl) List(ctx context.Context, table string, opts SelectOptions, offset string) (*Page, error) {
	query := url.Values{}
	if opts.FilterByFormula != "" {
		query.Set("filterByFormula", opts.FilterByFormula)
	}
	for _, f := range opts.Fields {
		query.Add("fields[]", f)
	}
	for i, s := range opts.Sort {
		query.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		if s.Direction != "" {
			query.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
		}
	}
	if opts.MaxRecords > 0 {
		query.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if offset != "" {
		query.Set("offset", offset)
	}

	reqURL := c.tableURL(table)
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build airtable list request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call airtable list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("airtable API list error %d: %s", resp.StatusCode, string(raw))
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode airtable list response: %w", err)
	}
	return &page, nil
}

// ListAll pages through a table read until the continuation token runs out.
func (c *clientImpl) ListAll(ctx context.Context, table string, opts SelectOptions) ([]Record, error) {
	var records []Record
	offset := ""
	for {
		page, err := c.List(ctx, table, opts, offset)
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

// UpdateRecord patches individual fields on one record.
func (c *clientImpl) UpdateRecord(ctx context.Context, table, recordID string, fields map[string]any) (*Record, error) {
	body, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal airtable update request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s", c.tableURL(table), url.PathEscape(recordID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build airtable update request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call airtable update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("airtable API update error %d: %s", resp.StatusCode, string(raw))
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode airtable update response: %w", err)
	}
	return &record, nil
}
