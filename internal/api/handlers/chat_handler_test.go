package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/personachat/backend/internal/api/handlers"
	"github.com/personachat/backend/internal/api/middleware"
	"github.com/personachat/backend/internal/api/routes"
	"github.com/personachat/backend/internal/models"
	"github.com/personachat/backend/internal/providers/llm"
	"github.com/personachat/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	rows []models.ConversationTurn
}

func (r *memRepo) Insert(ctx context.Context, turn *models.ConversationTurn) error {
	turn.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *turn)
	return nil
}

func (r *memRepo) ListBySession(ctx context.Context, sessionID string) ([]models.ConversationTurn, error) {
	var out []models.ConversationTurn
	for _, row := range r.rows {
		if row.SessionID == sessionID {
			out = append(out, row)
		}
	}
	return out, nil
}

type scriptedProvider struct {
	reply string
	err   error
	calls [][]llm.Message
}

func (p *scriptedProvider) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	p.calls = append(p.calls, messages)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func newTestServer(repo *memRepo, provider *scriptedProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewConversationService(repo, provider)

	r := gin.New()
	r.Use(middleware.Session("test-secret"))
	routes.RegisterRoutes(r, routes.Deps{
		Chat: handlers.NewChatHandler(svc),
		Page: handlers.NewPageHandler(),
	})
	return r
}

func postChat(r *gin.Engine, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate_conversation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateConversationSuccess(t *testing.T) {
	repo := &memRepo{}
	provider := &scriptedProvider{reply: "Hi! I'm Ava."}
	r := newTestServer(repo, provider)

	w := postChat(r, `{"userInput": "Hello", "name": "Ava", "age": 30}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"conversation": "Hi! I'm Ava."}`, w.Body.String())

	require.Len(t, provider.calls, 1)
	msgs := provider.calls[0]
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "Your name is Ava and your age is 30")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "Hello", repo.rows[0].UserMessage)
	assert.Equal(t, models.FlexString("Ava"), repo.rows[0].Profile.Name)
	assert.Equal(t, models.FlexString("30"), repo.rows[0].Profile.Age)
}

func TestGenerateConversationRejectsMissingInput(t *testing.T) {
	for _, body := range []string{`{}`, `{"userInput": ""}`, `not json`} {
		repo := &memRepo{}
		provider := &scriptedProvider{reply: "unused"}
		r := newTestServer(repo, provider)

		w := postChat(r, body, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Equal(t, `{"error":"No user input provided"}`, w.Body.String())
		assert.Empty(t, repo.rows)
		assert.Empty(t, provider.calls)
	}
}

func TestGenerateConversationSurfacesProviderError(t *testing.T) {
	repo := &memRepo{}
	provider := &scriptedProvider{err: errors.New("model overloaded")}
	r := newTestServer(repo, provider)

	w := postChat(r, `{"userInput": "Hello"}`, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"model overloaded"}`, w.Body.String())
	assert.Empty(t, repo.rows)
}

func TestGenerateConversationContinuityAcrossRequests(t *testing.T) {
	repo := &memRepo{}
	provider := &scriptedProvider{reply: "first reply"}
	r := newTestServer(repo, provider)

	w1 := postChat(r, `{"userInput": "Hello"}`, nil)
	require.Equal(t, http.StatusOK, w1.Code)
	cookies := w1.Result().Cookies()
	require.NotEmpty(t, cookies, "first response must set the session cookie")

	provider.reply = "second reply"
	w2 := postChat(r, `{"userInput": "And then?"}`, cookies)
	require.Equal(t, http.StatusOK, w2.Code)

	require.Len(t, provider.calls, 2)
	msgs := provider.calls[1]
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "Hello"}, msgs[1])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "first reply"}, msgs[2])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "And then?"}, msgs[3])

	require.Len(t, repo.rows, 2)
	assert.Equal(t, repo.rows[0].SessionID, repo.rows[1].SessionID)
}

func TestGenerateConversationWithoutCookieStartsFreshSession(t *testing.T) {
	repo := &memRepo{}
	provider := &scriptedProvider{reply: "r"}
	r := newTestServer(repo, provider)

	postChat(r, `{"userInput": "Hello"}`, nil)
	postChat(r, `{"userInput": "Hello again"}`, nil)

	// No cookie round-trip means no shared history.
	require.Len(t, provider.calls, 2)
	assert.Len(t, provider.calls[1], 2)
	require.Len(t, repo.rows, 2)
	assert.NotEqual(t, repo.rows[0].SessionID, repo.rows[1].SessionID)
}

func TestHistoryEndpointReturnsSessionTurns(t *testing.T) {
	repo := &memRepo{}
	provider := &scriptedProvider{reply: "a reply"}
	r := newTestServer(repo, provider)

	w1 := postChat(r, `{"userInput": "Hello", "name": "Ava"}`, nil)
	require.Equal(t, http.StatusOK, w1.Code)
	cookies := w1.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)

	var resp struct {
		SessionID string                    `json:"session_id"`
		Turns     []models.ConversationTurn `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	require.Len(t, resp.Turns, 1)
	assert.Equal(t, "Hello", resp.Turns[0].UserMessage)
	assert.Equal(t, "a reply", resp.Turns[0].AIResponse)
	assert.Equal(t, models.FlexString("Ava"), resp.Turns[0].Profile.Name)
}

func TestChatPagesServeHTML(t *testing.T) {
	r := newTestServer(&memRepo{}, &scriptedProvider{})

	for _, path := range []string{"/", "/custom_chat"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "generate_conversation")
	}
}
