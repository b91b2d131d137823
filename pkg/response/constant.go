package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from callers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// TooManyRequestsCode is the error_code for rate-limited requests.
	TooManyRequestsCode = 429

	// DateFormat renders Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
