package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAssistantClient implements AssistantClientInterface using Google's Gemini models.
type GeminiAssistantClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAssistantClient(apiKey, model string) (AssistantClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistantClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAssistantClient) Reply(ctx context.Context, history []ChatTurn, userMessage string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.3)

	var promptBuf strings.Builder
	promptBuf.WriteString("You are a helpful travel assistant. Answer the user's last message. Conversation so far:\n")
	for _, turn := range history {
		fmt.Fprintf(&promptBuf, "%s: %s\n", turn.Role, turn.Content)
	}
	fmt.Fprintf(&promptBuf, "user: %s\n", userMessage)

	resp, err := m.GenerateContent(ctx, genai.Text(promptBuf.String()))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
