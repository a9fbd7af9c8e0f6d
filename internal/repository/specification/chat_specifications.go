package specification

import "gorm.io/gorm"

// ByPatientID filters chat messages belonging to one patient
type ByPatientID struct {
	PatientID uint
}

func (s ByPatientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}
