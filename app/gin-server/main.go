package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/personachat/backend/config"
	"github.com/personachat/backend/internal/api/handlers"
	"github.com/personachat/backend/internal/api/middleware"
	"github.com/personachat/backend/internal/api/routes"
	"github.com/personachat/backend/internal/logger"
	"github.com/personachat/backend/internal/providers/llm"
	"github.com/personachat/backend/internal/repositories/sqlite"
	"github.com/personachat/backend/internal/services"
)

// Fallback signing secret. Fine for local development, unsafe anywhere else.
const insecureDevSecret = "dev_secret_key"

func main() {
	_ = godotenv.Load()

	log := logger.New()

	db, err := config.OpenDatabase()
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	provider, err := buildProvider(context.Background())
	if err != nil {
		log.Fatalf("llm provider init error: %v", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = insecureDevSecret
		log.Warn("SESSION_SECRET is not set; falling back to the insecure development default")
	}

	turns := sqlite.NewTurnRepo(db)
	svc := services.NewConversationService(turns, provider)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Session(secret))

	routes.RegisterRoutes(r, routes.Deps{
		Chat: handlers.NewChatHandler(svc),
		Page: handlers.NewPageHandler(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildProvider selects the completion backend. OpenAI is the default;
// LLM_PROVIDER=vertex switches to Vertex Gemini.
func buildProvider(ctx context.Context) (llm.Provider, error) {
	switch name := os.Getenv("LLM_PROVIDER"); name {
	case "", "openai":
		timeout := 60 * time.Second
		if s := os.Getenv("OPENAI_TIMEOUT_SECONDS"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				timeout = time.Duration(n) * time.Second
			}
		}
		return llm.NewOpenAI(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"), timeout), nil
	case "vertex":
		return llm.NewVertexGemini(ctx, os.Getenv("GCP_PROJECT"), os.Getenv("GCP_LOCATION"), os.Getenv("VERTEX_MODEL"))
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", name)
	}
}
