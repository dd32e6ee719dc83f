package models

import "time"

// TimestampLayout is how record timestamps are rendered on confirmation pages.
const TimestampLayout = "02/01/2006 15:04:05"

// RegistrationRecord is what a successful registration leaves in the session.
type RegistrationRecord struct {
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	RegisteredAt string `json:"fecha_registro"`
}

func NewRegistrationRecord(name, email string, now time.Time) RegistrationRecord {
	return RegistrationRecord{
		Name:         name,
		Email:        email,
		RegisteredAt: now.Format(TimestampLayout),
	}
}
