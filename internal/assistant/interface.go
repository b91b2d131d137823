package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// ProcessQuestion drives one conversational turn: prompt assembly,
	// model call(s), tool execution, reply parsing, memory update.
	ProcessQuestion(ctx context.Context, input AskInput) (AskOutput, error)

	// ClearSession forgets a session's conversation history.
	// Clearing an unknown session is not an error.
	ClearSession(ctx context.Context, sessionID string)
}
