package sessions

import (
	"context"
	"errors"
	"math/big"

	"rsa_demo_service/internal/domain/rsa"
)

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrNoKeyPair is returned when an operation needs a key pair but none has
// been generated for the session yet.
var ErrNoKeyPair = errors.New("session has no key pair")

// ErrNoCiphertext is returned when a decrypt request supplies no ciphertext
// and the session has no recorded one to fall back to.
var ErrNoCiphertext = errors.New("session has no ciphertext to decrypt")

// Encoding mode constants for encrypt/decrypt requests.
const (
	// EncodingRunes encrypts one integer per character code point.
	EncodingRunes = "runes"
	// EncodingText encrypts the whole message as a single integer and
	// represents the ciphertext as base64.
	EncodingText = "text"
)

// KeyGenParams selects how a session's key pair is generated: either from
// two explicit primes, or from two random primes of Bits/2 each.
type KeyGenParams struct {
	P *big.Int
	Q *big.Int

	Bits int
	E    int64
}

// FromPrimes reports whether explicit primes were supplied.
func (p *KeyGenParams) FromPrimes() bool {
	return p.P != nil || p.Q != nil
}

// CipherResult is the outcome of an encrypt operation. Values is set for
// the runes encoding, Base64 for the text encoding.
type CipherResult struct {
	Mode   string
	Values []*big.Int
	Base64 string
}

// CipherInput selects the ciphertext for a decrypt operation. When both
// fields are empty the session's last ciphertext is used.
type CipherInput struct {
	Mode   string
	Values []*big.Int
	Base64 string
}

// Empty reports whether no ciphertext was supplied.
func (c *CipherInput) Empty() bool {
	return len(c.Values) == 0 && c.Base64 == ""
}

// SessionService defines the operations of one demo session: creation and
// teardown, key generation, and encryption/decryption with the session's
// key pair.
type SessionService interface {
	// Create starts a new session without key material.
	Create(ctx context.Context) (*SessionMeta, error)

	// GetByID retrieves the metadata of a session by its unique ID.
	GetByID(ctx context.Context, sessionID string) (*SessionMeta, error)

	// List retrieves all session metadata considering a query filter when set.
	List(ctx context.Context, query *SessionQuery) ([]*SessionMeta, error)

	// DeleteByID tears a session down, discarding its key material and
	// deleting its metadata.
	DeleteByID(ctx context.Context, sessionID string) error

	// GenerateKeys generates a key pair for the session, replacing any
	// previous one.
	GenerateKeys(ctx context.Context, sessionID string, params KeyGenParams) (*rsa.KeyPair, error)

	// Encrypt encrypts plaintext with the session's public key and records
	// the result as the session's last ciphertext.
	Encrypt(ctx context.Context, sessionID, plaintext, mode string) (*CipherResult, error)

	// Decrypt decrypts the supplied ciphertext, or the session's last one
	// when none is given, with the session's private key.
	Decrypt(ctx context.Context, sessionID string, input CipherInput) (string, error)
}

// SessionStore is the in-memory store for live sessions. Key material never
// leaves this store; implementations must be safe for concurrent use.
// Get returns a snapshot of the session; mutations go through Update, which
// applies the change under the store's lock.
type SessionStore interface {
	Put(session *Session)
	Get(sessionID string) (*Session, error)
	Update(sessionID string, apply func(*Session)) error
	Delete(sessionID string) error
}

// SessionRepository defines the persistence interface for session metadata.
type SessionRepository interface {
	Create(ctx context.Context, meta *SessionMeta) error
	List(ctx context.Context, query *SessionQuery) ([]*SessionMeta, error)
	GetByID(ctx context.Context, sessionID string) (*SessionMeta, error)
	UpdateByID(ctx context.Context, meta *SessionMeta) error
	DeleteByID(ctx context.Context, sessionID string) error
}
