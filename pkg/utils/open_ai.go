package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openAISystemPrompt = "You are a helpful travel assistant. Help users plan trips: itineraries, packing tips, local culture, and recommendations. Keep answers concise."

type OpenAIAssistantClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistantClient(apiKey, model string) AssistantClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistantClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAssistantClient) Reply(ctx context.Context, history []ChatTurn, userMessage string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: openAISystemPrompt,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
