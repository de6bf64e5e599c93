package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

// VertexGemini is the alternate completion backend on Vertex AI. The system
// message becomes the model's system instruction and assistant turns map to
// the "model" role.
type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("empty message list")
	}

	last := messages[len(messages)-1]
	if last.Role != RoleUser {
		return "", errors.New("last message must have the user role")
	}

	model := *v.model
	var history []*vertexgenai.Content
	for _, m := range messages[:len(messages)-1] {
		switch m.Role {
		case RoleSystem:
			model.SystemInstruction = &vertexgenai.Content{
				Parts: []vertexgenai.Part{vertexgenai.Text(m.Content)},
			}
		case RoleAssistant:
			history = append(history, &vertexgenai.Content{
				Role:  "model",
				Parts: []vertexgenai.Part{vertexgenai.Text(m.Content)},
			})
		default:
			history = append(history, &vertexgenai.Content{
				Role:  "user",
				Parts: []vertexgenai.Part{vertexgenai.Text(m.Content)},
			})
		}
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, vertexgenai.Text(last.Content))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("completion returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
