package dto

import (
	"time"

	"monastery-guide/internal/models"
)

type ChatRequest struct {
	Message     string  `json:"message"`
	SessionID   string  `json:"session_id"`
	MonasteryID *string `json:"monastery_id"`
}

type ChatResponse struct {
	Response         string `json:"response"`
	SessionID        string `json:"session_id"`
	MonasteryContext bool   `json:"monastery_context"`
}

type ChatMessageResponse struct {
	ID               string  `json:"id"`
	SessionID        string  `json:"session_id"`
	UserMessage      string  `json:"user_message"`
	AIResponse       string  `json:"ai_response"`
	MonasteryContext *string `json:"monastery_context"`
	Timestamp        string  `json:"timestamp"`
}

type ChatHistoryResponse struct {
	Messages  []ChatMessageResponse `json:"messages"`
	SessionID string                `json:"session_id"`
}

func NewChatMessageResponse(msg *models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:               msg.ID,
		SessionID:        msg.SessionID,
		UserMessage:      msg.UserMessage,
		AIResponse:       msg.AIResponse,
		MonasteryContext: msg.MonasteryContext,
		Timestamp:        msg.CreatedAt.Format(time.RFC3339),
	}
}
