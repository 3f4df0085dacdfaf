package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GenerateCallsigns(ctx context.Context, count int) ([]string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const callsignPrompt = `
You are naming autonomous trading agents. Produce exactly %d distinct
one-word callsigns - short, evocative, no numbers, no punctuation.
Respond with a JSON array of strings and nothing else.
`

func (h gptRepositoryHandler) GenerateCallsigns(ctx context.Context, count int) ([]string, error) {
	res, err := h.GptClient.SimpleSend(ctx, fmt.Sprintf(callsignPrompt, count))
	if err != nil {
		return nil, fmt.Errorf("failed to generate callsigns: %w", err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("gpt returned no choices")
	}

	content := strings.TrimSpace(res.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "`")

	names := []string{}
	if err := json.Unmarshal([]byte(content), &names); err != nil {
		return nil, fmt.Errorf("failed to parse callsigns %q: %w", content, err)
	}
	if len(names) < count {
		return nil, fmt.Errorf("asked for %d callsigns, got %d", count, len(names))
	}

	return names[:count], nil
}
