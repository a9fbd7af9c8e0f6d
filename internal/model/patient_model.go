package model

import (
	"time"

	"gorm.io/datatypes"
)

type Patient struct {
	Id           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null;index"`
	Email        *string         `gorm:"type:varchar(255)"`
	Phone        *string         `gorm:"type:varchar(50)"`
	DateOfBirth  *datatypes.Date `gorm:"type:date"`
	MedicalNotes *string         `gorm:"type:text"`
	CreatedBy    *uint           `gorm:"index"`
	Creator      *User           `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index:idx_patients_created_at,sort:desc"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

func (Patient) TableName() string {
	return "patients"
}
