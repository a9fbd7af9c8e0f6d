package model

import (
	"time"
)

type ChatMessage struct {
	Id        uint     `gorm:"primaryKey"`
	PatientId uint     `gorm:"not null;index:idx_chat_messages_patient_id,priority:1"`
	Patient   *Patient `gorm:"foreignKey:PatientId;constraint:OnDelete:CASCADE"`
	UserId    *uint    `gorm:"index"`
	User      *User    `gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL"`
	Message   string   `gorm:"type:text;not null"`
	Role      string   `gorm:"type:varchar(50);not null;check:chk_chat_messages_role,role IN ('user','assistant')"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_chat_messages_patient_id,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
