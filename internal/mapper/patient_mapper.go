package mapper

import (
	"time"

	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type PatientMapper struct{}

func NewPatientMapper() *PatientMapper {
	return &PatientMapper{}
}

func (m *PatientMapper) ToModel(e *entity.Patient) *model.Patient {
	var dob *datatypes.Date
	if e.DateOfBirth != nil {
		d := datatypes.Date(*e.DateOfBirth)
		dob = &d
	}
	return &model.Patient{
		Id:           e.Id,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		DateOfBirth:  dob,
		MedicalNotes: e.MedicalNotes,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m *PatientMapper) ToEntity(p *model.Patient) *entity.Patient {
	var dob *time.Time
	if p.DateOfBirth != nil {
		d := time.Time(*p.DateOfBirth)
		dob = &d
	}
	return &entity.Patient{
		Id:           p.Id,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		DateOfBirth:  dob,
		MedicalNotes: p.MedicalNotes,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
