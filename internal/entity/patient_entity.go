package entity

import (
	"time"
)

type Patient struct {
	Id           uint
	Name         string
	Email        *string
	Phone        *string
	DateOfBirth  *time.Time
	MedicalNotes *string
	CreatedBy    *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
