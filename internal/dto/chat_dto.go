package dto

import (
	"time"
)

type SendMessageRequest struct {
	PatientId uint   `json:"patientId" validate:"required,gt=0"`
	Message   string `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Id        uint      `json:"id"`
	Message   string    `json:"message"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatPatientSummary struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type ChatHistoryResponse struct {
	Patient  ChatPatientSummary     `json:"patient"`
	Messages []*ChatMessageResponse `json:"messages"`
}

type SendMessageResponse struct {
	UserMessage *ChatMessageResponse `json:"userMessage"`
	AiMessage   *ChatMessageResponse `json:"aiMessage"`
	// Fallback marks a canned reply substituted for a real assistant
	// response, with the reason attached.
	Fallback       bool   `json:"fallback"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}
