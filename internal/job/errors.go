package job

import "errors"

// Domain-specific errors for the job package.
var (
	ErrJobNotFound = errors.New("job not found")
)
