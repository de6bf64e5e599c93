package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/personachat/backend/internal/api/handlers"
)

type Deps struct {
	Chat *handlers.ChatHandler
	Page *handlers.PageHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", d.Page.ChatUI)
	r.GET("/custom_chat", d.Page.ChatUI)

	r.POST("/generate_conversation", d.Chat.Generate)
	r.GET("/history", d.Chat.History)
}
