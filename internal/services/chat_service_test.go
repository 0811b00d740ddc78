package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/pkg/utils"
)

type fakeChatRepo struct {
	messages []*db_models.ChatMessage
	seq      int64
}

func (f *fakeChatRepo) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.seq++
	message.CreatedAt = f.seq
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) ListByUserId(ctx context.Context, userId string) ([]db_models.ChatMessage, error) {
	var out []db_models.ChatMessage
	for _, m := range f.messages {
		if m.UserID.String() == userId {
			out = append(out, *m)
		}
	}
	return out, nil
}

type scriptedAssistant struct {
	reply       string
	err         error
	lastHistory []utils.ChatTurn
	lastMessage string
}

func (s *scriptedAssistant) Reply(ctx context.Context, history []utils.ChatTurn, userMessage string) (string, error) {
	s.lastHistory = history
	s.lastMessage = userMessage
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestSendMessageRequiresIdentity(t *testing.T) {
	svc := NewChatService(&fakeChatRepo{}, &scriptedAssistant{reply: "hi"})

	_, err := svc.SendMessage(context.Background(), "not-a-uuid", request_models.SendChatMessageRequest{Content: "hello"})
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	repo := &fakeChatRepo{}
	assistant := &scriptedAssistant{reply: "Try visiting in spring."}
	svc := NewChatService(repo, assistant)
	userId := uuid.New().String()

	exchange, err := svc.SendMessage(context.Background(), userId, request_models.SendChatMessageRequest{
		Content: "Best time to visit Japan?",
	})
	require.NoError(t, err)

	assert.Equal(t, RoleUser, exchange.UserMessage.Role)
	assert.Equal(t, "Best time to visit Japan?", exchange.UserMessage.Content)
	assert.Equal(t, RoleAssistant, exchange.AssistantMessage.Role)
	assert.Equal(t, "Try visiting in spring.", exchange.AssistantMessage.Content)

	require.Len(t, repo.messages, 2)
	assert.Equal(t, userId, repo.messages[0].UserID.String())
	assert.Equal(t, userId, repo.messages[1].UserID.String())
	assert.Equal(t, "Best time to visit Japan?", assistant.lastMessage)
}

func TestSendMessagePassesHistoryToAssistant(t *testing.T) {
	repo := &fakeChatRepo{}
	assistant := &scriptedAssistant{reply: "ok"}
	svc := NewChatService(repo, assistant)
	userId := uuid.New().String()

	_, err := svc.SendMessage(context.Background(), userId, request_models.SendChatMessageRequest{Content: "first"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), userId, request_models.SendChatMessageRequest{Content: "second"})
	require.NoError(t, err)

	// The second call sees the first exchange as history.
	require.Len(t, assistant.lastHistory, 2)
	assert.Equal(t, RoleUser, assistant.lastHistory[0].Role)
	assert.Equal(t, "first", assistant.lastHistory[0].Content)
	assert.Equal(t, RoleAssistant, assistant.lastHistory[1].Role)
}

func TestSendMessageFallsBackOnAssistantError(t *testing.T) {
	repo := &fakeChatRepo{}
	assistant := &scriptedAssistant{err: errors.New("model unavailable")}
	svc := NewChatService(repo, assistant)
	userId := uuid.New().String()

	exchange, err := svc.SendMessage(context.Background(), userId, request_models.SendChatMessageRequest{Content: "hello"})
	require.NoError(t, err)

	assert.Equal(t, fallbackReply, exchange.AssistantMessage.Content)
	require.Len(t, repo.messages, 2)
}

func TestListChatHistoryOldestFirstAndOwned(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &scriptedAssistant{reply: "ok"})
	alice := uuid.New().String()
	bob := uuid.New().String()

	_, err := svc.SendMessage(context.Background(), alice, request_models.SendChatMessageRequest{Content: "alice one"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), bob, request_models.SendChatMessageRequest{Content: "bob one"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), alice, request_models.SendChatMessageRequest{Content: "alice two"})
	require.NoError(t, err)

	history, err := svc.ListChatHistory(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, "alice one", history[0].Content)
	assert.Equal(t, RoleAssistant, history[1].Role)
	assert.Equal(t, "alice two", history[2].Content)

	for _, msg := range history {
		assert.NotContains(t, msg.Content, "bob")
	}
}

func TestCannedAssistantAlwaysReplies(t *testing.T) {
	assistant := utils.NewCannedAssistantClient()

	reply, err := assistant.Reply(context.Background(), nil, "anything")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply)
}
