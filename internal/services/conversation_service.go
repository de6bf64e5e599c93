package services

import (
	"context"

	"github.com/personachat/backend/internal/models"
	"github.com/personachat/backend/internal/prompt"
	"github.com/personachat/backend/internal/providers/llm"
	"github.com/personachat/backend/internal/repositories/sqlite"
	"github.com/personachat/backend/internal/utils"
)

type ConversationService interface {
	// Generate runs one chat turn: build the persona prompt, replay the
	// session history to the completion provider, persist the turn, and
	// return the reply. Nothing is persisted unless the completion succeeds.
	Generate(ctx context.Context, sessionID string, profile models.CharacterProfile, userInput string) (string, error)
	History(ctx context.Context, sessionID string) ([]models.ConversationTurn, error)
}

type conversationService struct {
	turns    sqlite.TurnRepository
	provider llm.Provider
}

func NewConversationService(turns sqlite.TurnRepository, provider llm.Provider) ConversationService {
	return &conversationService{turns: turns, provider: provider}
}

func (s *conversationService) Generate(ctx context.Context, sessionID string, profile models.CharacterProfile, userInput string) (string, error) {
	const op = "ConversationService.Generate"

	if userInput == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "No user input provided", nil)
	}

	history, err := s.turns.ListBySession(ctx, sessionID)
	if err != nil {
		return "", utils.E(utils.CodeStorage, op, "failed to load conversation history", err)
	}

	messages := make([]llm.Message, 0, 2*len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: prompt.BuildSystem(profile)})
	messages = append(messages, prompt.HistoryMessages(history)...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userInput})

	reply, err := s.provider.Complete(ctx, messages)
	if err != nil {
		// The provider's message goes to the client verbatim; no retry.
		return "", utils.E(utils.CodeUpstream, op, err.Error(), err)
	}

	turn := &models.ConversationTurn{
		SessionID:   sessionID,
		UserMessage: userInput,
		AIResponse:  reply,
		Profile:     profile,
	}
	if err := s.turns.Insert(ctx, turn); err != nil {
		// Known gap: the reply was computed but could not be recorded, so
		// the client loses it along with the turn.
		return "", utils.E(utils.CodeStorage, op, "failed to record conversation turn", err)
	}

	return reply, nil
}

func (s *conversationService) History(ctx context.Context, sessionID string) ([]models.ConversationTurn, error) {
	const op = "ConversationService.History"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session id is required", nil)
	}

	rows, err := s.turns.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeStorage, op, "failed to list conversation turns", err)
	}
	return rows, nil
}
