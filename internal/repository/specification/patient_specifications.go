package specification

import "gorm.io/gorm"

// PatientSearchQuery filters patients by a case-insensitive substring match
// on name, email or phone. ILIKE keeps it Postgres-side.
type PatientSearchQuery struct {
	Query string
}

func (s PatientSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
}
