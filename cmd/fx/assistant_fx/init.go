package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wanderly/pkg/utils"
)

var Module = fx.Provide(provideAssistantClient)

// provideAssistantClient picks the chat backend from the environment:
// OPENAI_API_KEY wins, then GEMINI_API_KEY, then the canned responder.
func provideAssistantClient() utils.AssistantClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIAssistantClient(key, os.Getenv("OPENAI_MODEL"))
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiAssistantClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Failed to initialize Gemini client, falling back to canned replies: %v", err)
			return utils.NewCannedAssistantClient()
		}
		return client
	}

	return utils.NewCannedAssistantClient()
}
