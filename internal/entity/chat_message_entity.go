package entity

import (
	"time"
)

// MessageRole is the closed set of chat transcript roles. It is validated
// here rather than relying on call sites passing the right string.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant
}

type ChatMessage struct {
	Id        uint
	PatientId uint
	UserId    *uint
	Message   string
	Role      MessageRole
	CreatedAt time.Time
}
