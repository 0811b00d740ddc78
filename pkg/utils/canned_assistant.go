package utils

import "context"

const cannedReply = "I can help you plan your trip! Would you like me to generate a detailed itinerary for your destination?"

// CannedAssistantClient is the no-credentials assistant: it always answers
// with the same line. Used when neither OPENAI_API_KEY nor GEMINI_API_KEY is
// set, and as the reply of last resort when a real model errors out.
type CannedAssistantClient struct{}

func NewCannedAssistantClient() *CannedAssistantClient {
	return &CannedAssistantClient{}
}

func (c *CannedAssistantClient) Reply(ctx context.Context, history []ChatTurn, userMessage string) (string, error) {
	return cannedReply, nil
}
