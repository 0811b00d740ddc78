package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderly/internal/repositories"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(
	provideChatService, provideChatRepo)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository, assistant utils.AssistantClientInterface) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, assistant)
}
