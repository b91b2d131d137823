package agent

import (
	"context"

	"github.com/MGhunch/dot-hub-api/pkg/anthropic"
)

// Tool represents an operation the model may request on its behalf.
type Tool interface {
	// Name returns the tool name (used in tool calling).
	Name() string

	// Description returns what the tool does (for the model).
	Description() string

	// Parameters returns the JSON schema for tool arguments.
	Parameters() map[string]interface{}

	// Execute runs the tool with the given arguments. Failures are
	// returned as errors; the orchestrator folds them into an
	// {error: reason} tool result rather than failing the turn.
	Execute(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// ToToolDeclarations converts tools to the messages API declaration format.
func (r *ToolRegistry) ToToolDeclarations() []anthropic.Tool {
	tools := make([]anthropic.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, anthropic.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.Parameters(),
		})
	}
	return tools
}
