package anthropic

import (
	"errors"
	"time"
)

const (
	// DefaultModel is the default Claude model.
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultBaseURL is the Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// APIVersion is sent as the anthropic-version header.
	APIVersion = "2023-06-01"

	// DefaultMaxTokens is the per-call completion budget.
	DefaultMaxTokens = 1000

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)

// Stop reasons returned by the messages API.
const (
	StopReasonEndTurn = "end_turn"
	StopReasonToolUse = "tool_use"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block types.
const (
	BlockTypeText       = "text"
	BlockTypeToolUse    = "tool_use"
	BlockTypeToolResult = "tool_result"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("anthropic: api key not configured")
