package request_models

type SendChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
