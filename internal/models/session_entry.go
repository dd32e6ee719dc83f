package models

import "time"

// SessionEntry is one key of one visitor session in the SQL session backend.
type SessionEntry struct {
	SessionID string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"primaryKey;column:entry_key;size:64"`
	Payload   []byte    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
