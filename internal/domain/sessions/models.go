package sessions

import (
	"errors"
	"fmt"
	"time"

	"rsa_demo_service/internal/domain/rsa"

	"github.com/go-playground/validator/v10"
)

// Session entity. Holds the key material for one demo session; it is only
// ever kept in the in-memory store and never persisted.
type Session struct {
	ID              string
	KeyPair         *rsa.KeyPair
	LastCiphertext  *CipherResult
	DateTimeCreated time.Time
}

// SessionMeta is the persistable view of a session: identifiers, key shape
// and operation counters, but no key material.
type SessionMeta struct {
	ID              string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeySize         uint32    `validate:"omitempty,min=1"`
	Operations      uint32    ``
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// Validate for validating SessionMeta struct
func (s *SessionMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// SessionQuery defines filter, sorting and pagination options for listing
// session metadata.
type SessionQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=RSA"`
	DateTimeCreated time.Time ``

	SortBy    string `validate:"omitempty,oneof=id key_size date_time_created date_time_updated"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
}

// Validate for validating SessionQuery struct
func (q *SessionQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for SessionQuery: %w", err)
	}

	return nil
}
