package anthropic

import "net/http"

// Config holds the settings for the Anthropic client.
type Config struct {
	APIKey     string
	BaseURL    string // defaults to DefaultBaseURL
	Model      string // defaults to DefaultModel
	HTTPClient *http.Client
}

// MessagesRequest is the body for POST /messages.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	Tools     []Tool    `json:"tools,omitempty"`
}

// Message is one role-tagged conversation turn.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one content element of a message. Which fields are
// set depends on Type: text blocks carry Text; tool_use blocks carry
// ID, Name and Input; tool_result blocks carry ToolUseID and Content.
type ContentBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

// Tool is a function declaration offered to the model.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// MessagesResponse is the messages API reply.
type MessagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Role       string         `json:"role"`
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
	Usage      Usage          `json:"usage"`
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// NewTextMessage builds a single-text-block message.
func NewTextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentBlock{{Type: BlockTypeText, Text: text}},
	}
}

// NewToolResultBlock builds a tool_result block correlated to a
// tool_use request id.
func NewToolResultBlock(toolUseID, content string) ContentBlock {
	return ContentBlock{
		Type:      BlockTypeToolResult,
		ToolUseID: toolUseID,
		Content:   content,
	}
}

// FirstText returns the text of the first text content block, or ""
// when the reply carries none.
func (r *MessagesResponse) FirstText() string {
	for _, block := range r.Content {
		if block.Type == BlockTypeText {
			return block.Text
		}
	}
	return ""
}
