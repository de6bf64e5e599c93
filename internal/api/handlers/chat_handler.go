package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/personachat/backend/internal/models"
	"github.com/personachat/backend/internal/services"
)

type ChatHandler struct {
	svc services.ConversationService
}

func NewChatHandler(svc services.ConversationService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatRequest is the POST /generate_conversation body. Every profile field
// is optional and defaults to the empty string; only userInput is required.
type ChatRequest struct {
	models.CharacterProfile
	UserInput string `json:"userInput"`
}

func (h *ChatHandler) Generate(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	// An unparseable or missing body carries no user input, so it gets the
	// same 400 as an empty userInput field.
	var req ChatRequest
	_ = c.ShouldBindJSON(&req)

	reply, err := h.svc.Generate(c.Request.Context(), sessionID, req.CharacterProfile, req.UserInput)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": reply})
}

// History returns this session's stored turns in insertion order.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}

	rows, err := h.svc.History(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	if rows == nil {
		rows = []models.ConversationTurn{}
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"turns":      rows,
	})
}
