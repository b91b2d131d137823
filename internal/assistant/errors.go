package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuestion = errors.New("no question provided")
	ErrNotConfigured = errors.New("model API not configured")
)
