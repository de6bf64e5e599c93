package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/personachat/backend/web"
)

// PageHandler serves the embedded chat UI.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) ChatUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.ChatPage)
}
