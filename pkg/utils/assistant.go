package utils

import "context"

// ChatTurn is one prior exchange in a conversation, oldest first.
type ChatTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// AssistantClientInterface produces the assistant side of the travel chat.
// Implementations: OpenAI, Gemini, and the deterministic canned responder
// wired as the default.
type AssistantClientInterface interface {
	Reply(ctx context.Context, history []ChatTurn, userMessage string) (string, error)
}
