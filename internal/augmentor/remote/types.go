package remote

import "github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"

type augmentRequest struct {
	UserMessage  string               `json:"user_message"`
	ChatMemoryID string               `json:"chat_memory_id"`
	ChatMemory   []domain.ChatMessage `json:"chat_memory"`
}

type augmentResponse struct {
	Contents []domain.Content `json:"contents"`
}
