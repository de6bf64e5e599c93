package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT3Dot5Turbo

// OpenAI calls the OpenAI chat-completion API. The HTTP client carries a
// timeout so a silent upstream resolves to an error instead of hanging the
// request forever.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	if model == "" {
		model = defaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
