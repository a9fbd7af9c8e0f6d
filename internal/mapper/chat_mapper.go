package mapper

import (
	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToModel(e *entity.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		Id:        e.Id,
		PatientId: e.PatientId,
		UserId:    e.UserId,
		Message:   e.Message,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:        c.Id,
		PatientId: c.PatientId,
		UserId:    c.UserId,
		Message:   c.Message,
		Role:      entity.MessageRole(c.Role),
		CreatedAt: c.CreatedAt,
	}
}
