package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})
}

func TestCreateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Request Shape And Defaults", func(t *testing.T) {
		var gotAPIKey, gotVersion, gotPath string
		var gotBody MessagesRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAPIKey = r.Header.Get("x-api-key")
			gotVersion = r.Header.Get("anthropic-version")
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(MessagesResponse{
				StopReason: StopReasonEndTurn,
				Content:    []ContentBlock{{Type: BlockTypeText, Text: "hello"}},
			})
		})

		resp, err := client.CreateMessage(ctx, &MessagesRequest{
			System:   "be brief",
			Messages: []Message{NewTextMessage(RoleUser, "hi")},
		})
		if err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
		if resp.FirstText() != "hello" {
			t.Errorf("FirstText = %q", resp.FirstText())
		}

		if gotAPIKey != "sk-test" {
			t.Errorf("x-api-key = %q", gotAPIKey)
		}
		if gotVersion != APIVersion {
			t.Errorf("anthropic-version = %q", gotVersion)
		}
		if gotPath != "/messages" {
			t.Errorf("Path = %q", gotPath)
		}
		if gotBody.Model != DefaultModel {
			t.Errorf("Model = %q, expected default", gotBody.Model)
		}
		if gotBody.MaxTokens != DefaultMaxTokens {
			t.Errorf("MaxTokens = %d, expected default", gotBody.MaxTokens)
		}
		if gotBody.System != "be brief" {
			t.Errorf("System = %q", gotBody.System)
		}
	})

	t.Run("Tool Use Response Decodes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"stop_reason": "tool_use",
				"content": [
					{"type": "text", "text": "checking"},
					{"type": "tool_use", "id": "toolu_01", "name": "get_spend_summary", "input": {"client_code": "SKY"}}
				]
			}`))
		})

		resp, err := client.CreateMessage(ctx, &MessagesRequest{
			Messages: []Message{NewTextMessage(RoleUser, "budget?")},
		})
		if err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
		if resp.StopReason != StopReasonToolUse {
			t.Errorf("StopReason = %q", resp.StopReason)
		}
		block := resp.Content[1]
		if block.Type != BlockTypeToolUse || block.Name != "get_spend_summary" {
			t.Errorf("Unexpected block: %+v", block)
		}
		if block.Input["client_code"] != "SKY" {
			t.Errorf("Input = %v", block.Input)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"type": "rate_limit_error"}}`))
		})

		_, err := client.CreateMessage(ctx, &MessagesRequest{})
		if err == nil || !strings.Contains(err.Error(), "API error 429") {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("Not Configured", func(t *testing.T) {
		client := New(Config{})
		if client.Configured() {
			t.Error("Expected Configured() to be false without a key")
		}
		_, err := client.CreateMessage(ctx, &MessagesRequest{})
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("Expected ErrNotConfigured, got %v", err)
		}
	})
}

func TestFirstText(t *testing.T) {
	resp := &MessagesResponse{Content: []ContentBlock{
		{Type: BlockTypeToolUse, Name: "search_people"},
		{Type: BlockTypeText, Text: "found them"},
	}}
	if got := resp.FirstText(); got != "found them" {
		t.Errorf("FirstText = %q", got)
	}

	empty := &MessagesResponse{}
	if got := empty.FirstText(); got != "" {
		t.Errorf("FirstText on empty = %q", got)
	}
}
