package prompt

import (
	"github.com/personachat/backend/internal/models"
	"github.com/personachat/backend/internal/providers/llm"
)

// HistoryMessages expands stored turns into the flat message sequence the
// completion service expects: a user message per turn, followed by an
// assistant message when a response was recorded. The full history is
// replayed on every request; there is no truncation or summarization.
func HistoryMessages(turns []models.ConversationTurn) []llm.Message {
	msgs := make([]llm.Message, 0, 2*len(turns))
	for _, t := range turns {
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: t.UserMessage})
		if t.AIResponse != "" {
			msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: t.AIResponse})
		}
	}
	return msgs
}
