package models

import (
	"time"

	"rsa_demo_service/internal/domain/sessions"
)

// SessionModel is the GORM database model for session metadata
// (infrastructure concern). Key material is never part of this model.
type SessionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	KeySize         uint32    `gorm:"type:integer"`
	Operations      uint32    `gorm:"type:integer"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.SessionMeta {
	return &sessions.SessionMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		Operations:      m.Operations,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.SessionMeta) {
	m.ID = s.ID
	m.Algorithm = s.Algorithm
	m.KeySize = s.KeySize
	m.Operations = s.Operations
	m.DateTimeCreated = s.DateTimeCreated
	m.DateTimeUpdated = s.DateTimeUpdated
}
