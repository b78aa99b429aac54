package store

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-held state for one connected client. It carries only a
// stable identity reference (id, username, role); profile data is re-fetched
// from the user store on demand so it never goes stale against the source of
// truth.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// NewSession creates an unauthenticated session with a fixed lifetime.
// The expiry is absolute from creation; it does not slide on activity.
func NewSession(maxAge time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(maxAge),
	}
}

// Conversation roles as sent to the chat-completions API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationEntry is a single turn in a chat exchange.
type ConversationEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
