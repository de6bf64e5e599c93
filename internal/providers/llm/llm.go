package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a synchronous chat-completion backend. Complete blocks until
// the remote call resolves or errors; callers bound it with the context.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
