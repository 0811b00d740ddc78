package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// fallbackReply matches what CannedAssistantClient returns, so the chat keeps
// working even when the configured model is unreachable.
const fallbackReply = "I can help you plan your trip! Would you like me to generate a detailed itinerary for your destination?"

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, userId string, request request_models.SendChatMessageRequest) (*response_models.ChatExchangeResponse, error)
	ListChatHistory(ctx context.Context, userId string) ([]response_models.ChatMessageResponse, error)
}

type ChatService struct {
	chatRepo  repositories.ChatRepository
	assistant utils.AssistantClientInterface
}

func NewChatService(chatRepo repositories.ChatRepository, assistant utils.AssistantClientInterface) ChatServiceInterface {
	return &ChatService{
		chatRepo:  chatRepo,
		assistant: assistant,
	}
}

// SendMessage appends the user's message to the log, asks the assistant for a
// reply, and appends that too. The user message is committed before the
// assistant is consulted, so a model failure never loses the user's turn.
func (c *ChatService) SendMessage(ctx context.Context, userId string, request request_models.SendChatMessageRequest) (*response_models.ChatExchangeResponse, error) {
	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	history, err := c.chatRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	userMessage := &db_models.ChatMessage{
		UserID:  ownerId,
		Role:    RoleUser,
		Content: request.Content,
	}
	if err := c.chatRepo.Insert(ctx, userMessage); err != nil {
		log.Printf("Error inserting chat message: %v", err)
		return nil, utils.ErrDatabaseError
	}

	turns := make([]utils.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, utils.ChatTurn{Role: msg.Role, Content: msg.Content})
	}

	reply, err := c.assistant.Reply(ctx, turns, request.Content)
	if err != nil {
		log.Printf("Assistant reply failed, using fallback: %v", err)
		reply = fallbackReply
	}

	assistantMessage := &db_models.ChatMessage{
		UserID:  ownerId,
		Role:    RoleAssistant,
		Content: reply,
	}
	if err := c.chatRepo.Insert(ctx, assistantMessage); err != nil {
		log.Printf("Error inserting assistant message: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ChatExchangeResponse{
		UserMessage:      buildChatMessageResponse(userMessage),
		AssistantMessage: buildChatMessageResponse(assistantMessage),
	}, nil
}

// ListChatHistory returns the caller's messages oldest first.
func (c *ChatService) ListChatHistory(ctx context.Context, userId string) ([]response_models.ChatMessageResponse, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, utils.ErrUnauthenticated
	}

	messages, err := c.chatRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, buildChatMessageResponse(&messages[i]))
	}

	return out, nil
}

func buildChatMessageResponse(message *db_models.ChatMessage) response_models.ChatMessageResponse {
	return response_models.ChatMessageResponse{
		ID:        message.ID.String(),
		Role:      message.Role,
		Content:   message.Content,
		Timestamp: utils.FormatRFC3339(utils.FromUnixSeconds(message.CreatedAt)),
	}
}
