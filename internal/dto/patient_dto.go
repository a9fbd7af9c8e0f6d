package dto

import (
	"time"
)

type PatientResponse struct {
	Id           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	DateOfBirth  *string   `json:"date_of_birth"`
	MedicalNotes *string   `json:"medical_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreatePatientRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	DateOfBirth  *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalNotes *string `json:"medical_notes"`
}

// UpdatePatientRequest carries the same fields as create; an update
// overwrites every mutable column.
type UpdatePatientRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	DateOfBirth  *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalNotes *string `json:"medical_notes"`
}

type ListPatientsResponse struct {
	Patients   []*PatientResponse `json:"patients"`
	Pagination Pagination         `json:"pagination"`
}
