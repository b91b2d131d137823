package session

import "github.com/MGhunch/dot-hub-api/internal/model"

// Store keeps per-session conversation history. Implementations own
// session lifecycle: create on first use, expire on idle, delete on
// Clear. The in-memory implementation is per-process; running more
// than one instance fragments history per instance, so deployments
// needing shared memory must back this interface with an external
// store.
type Store interface {
	// Get returns the session's turns oldest-first, creating the
	// session if absent and touching its last-active time. Expired
	// sessions are swept before lookup, so an idle session silently
	// comes back fresh.
	Get(sessionID string) []model.Turn

	// Append adds one turn and truncates history to the most recent
	// MaxTurns.
	Append(sessionID string, role model.Role, content string)

	// Clear deletes the session. Clearing an absent session is not an
	// error.
	Clear(sessionID string)
}
