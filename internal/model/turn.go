package model

// Role tags one side of a conversation exchange.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a session's conversation history.
type Turn struct {
	Role    Role
	Content string
}
