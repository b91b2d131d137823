package usecase

import (
	"context"
	"errors"

	"github.com/MGhunch/dot-hub-api/internal/model"
	"github.com/MGhunch/dot-hub-api/pkg/anthropic"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Anthropic client. Responses are dequeued one per CreateMessage
// call; requests are recorded for assertions.
type mockLLM struct {
	responses  []*anthropic.MessagesResponse
	err        error
	configured bool
	requests   []*anthropic.MessagesRequest
}

func (m *mockLLM) CreateMessage(ctx context.Context, req *anthropic.MessagesRequest) (*anthropic.MessagesResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, errors.New("mockLLM: no response queued")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func (m *mockLLM) Configured() bool { return m.configured }
func (m *mockLLM) Model() string    { return "test-model" }

func textResponse(text string) *anthropic.MessagesResponse {
	return &anthropic.MessagesResponse{
		StopReason: anthropic.StopReasonEndTurn,
		Content:    []anthropic.ContentBlock{{Type: anthropic.BlockTypeText, Text: text}},
	}
}

func toolUseResponse(id, name string, input map[string]any) *anthropic.MessagesResponse {
	return &anthropic.MessagesResponse{
		StopReason: anthropic.StopReasonToolUse,
		Content: []anthropic.ContentBlock{
			{Type: anthropic.BlockTypeToolUse, ID: id, Name: name, Input: input},
		},
	}
}

// Mock session store for testing
type mockSessionStore struct {
	turns   map[string][]model.Turn
	cleared []string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{turns: make(map[string][]model.Turn)}
}

func (m *mockSessionStore) Get(sessionID string) []model.Turn {
	return m.turns[sessionID]
}

func (m *mockSessionStore) Append(sessionID string, role model.Role, content string) {
	m.turns[sessionID] = append(m.turns[sessionID], model.Turn{Role: role, Content: content})
}

func (m *mockSessionStore) Clear(sessionID string) {
	delete(m.turns, sessionID)
	m.cleared = append(m.cleared, sessionID)
}

func (m *mockSessionStore) totalTurns() int {
	n := 0
	for _, turns := range m.turns {
		n += len(turns)
	}
	return n
}

// Mock tool for testing
type mockTool struct {
	name     string
	result   map[string]interface{}
	err      error
	gotArgs  map[string]interface{}
	executed int
}

func (m *mockTool) Name() string                           { return m.name }
func (m *mockTool) Description() string                    { return "mock tool" }
func (m *mockTool) Parameters() map[string]interface{}     { return map[string]interface{}{"type": "object"} }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	m.executed++
	m.gotArgs = args
	return m.result, m.err
}
