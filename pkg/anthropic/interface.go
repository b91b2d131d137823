package anthropic

import "context"

// IClient defines the interface for the Anthropic messages API client.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateMessage sends one messages request and returns the reply.
	CreateMessage(ctx context.Context, req *MessagesRequest) (*MessagesResponse, error)

	// Configured reports whether an API key is set. A client without a
	// key still constructs; CreateMessage fails with ErrNotConfigured.
	Configured() bool

	// Model returns the model being used.
	Model() string
}

// New creates a new Anthropic client with the given configuration.
func New(cfg Config) IClient {
	return newClientImpl(cfg)
}
