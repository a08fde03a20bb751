package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human-readable confirmation message.
type InfoResponse struct {
	Message string `json:"message"`
}

// SessionResponse is the REST representation of session metadata.
type SessionResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	Operations      uint32    `json:"operations"`
	DateTimeCreated time.Time `json:"date_time_created"`
	DateTimeUpdated time.Time `json:"date_time_updated"`
}

// GenerateKeysRequest selects key generation parameters: either two explicit
// primes as decimal strings, or a key size in bits with an optional public
// exponent.
type GenerateKeysRequest struct {
	P    string `json:"p" validate:"omitempty,number"`
	Q    string `json:"q" validate:"omitempty,number"`
	Bits int    `json:"bits" validate:"omitempty,min=16,max=4096"`
	E    int64  `json:"e" validate:"omitempty,min=3"`
}

// Validate for validating GenerateKeysRequest struct
func (r *GenerateKeysRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
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

	// Primes come in pairs
	if (r.P == "") != (r.Q == "") {
		return fmt.Errorf("p and q must be provided together")
	}
	if r.P != "" && (r.Bits != 0 || r.E != 0) {
		return fmt.Errorf("explicit primes cannot be combined with bits or e")
	}

	return nil
}

// KeyPairResponse carries a generated key pair as decimal strings. The
// private exponent is included on purpose; this service demonstrates the
// arithmetic and must never guard real secrets.
type KeyPairResponse struct {
	N string `json:"n"`
	E string `json:"e"`
	D string `json:"d"`
}

// EncryptRequest carries a plaintext and the encoding mode to use.
type EncryptRequest struct {
	Plaintext string `json:"plaintext" validate:"required"`
	Mode      string `json:"mode" validate:"omitempty,oneof=runes text"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
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

// EncryptResponse carries the ciphertext: one decimal string per character
// for the runes mode, or a single base64 value for the text mode.
type EncryptResponse struct {
	Mode      string   `json:"mode"`
	Cipher    []string `json:"cipher,omitempty"`
	CipherB64 string   `json:"cipher_b64,omitempty"`
}

// DecryptRequest carries a ciphertext in either representation. An empty
// request decrypts the session's last recorded ciphertext.
type DecryptRequest struct {
	Cipher    []string `json:"cipher" validate:"omitempty,dive,number"`
	CipherB64 string   `json:"cipher_b64" validate:"omitempty,base64"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
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

	if len(r.Cipher) > 0 && r.CipherB64 != "" {
		return fmt.Errorf("cipher and cipher_b64 are mutually exclusive")
	}

	return nil
}

// DecryptResponse carries the recovered plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}
