package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a chat message to the travel assistant
// @Description Persists the user's message and the assistant's reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.SendChatMessageRequest true "Chat message payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/messages [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	exchange, err := ch.chatService.SendMessage(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exchange, "Message sent successfully")
}

// ListChatHistory godoc
// @Summary List the current user's chat history, oldest first
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/messages [get]
func (ch *ChatController) ListChatHistory(c *gin.Context) {
	userId := c.GetString("user_id")

	messages, err := ch.chatService.ListChatHistory(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Chat history fetched successfully")
}
