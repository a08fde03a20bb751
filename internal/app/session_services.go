package app

import (
	"context"
	"fmt"
	"time"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/domain/sessions"
	"rsa_demo_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// Defaults for random key generation when the request leaves them unset.
const (
	defaultKeyBits        = 2048
	defaultPublicExponent = 65537
)

// sessionService implements the sessions.SessionService interface
type sessionService struct {
	store     sessions.SessionStore
	repo      sessions.SessionRepository
	processor rsaDomain.Processor
	logger    logger.Logger
}

// NewSessionService creates a new sessionService instance
func NewSessionService(
	store sessions.SessionStore,
	repo sessions.SessionRepository,
	processor rsaDomain.Processor,
	logger logger.Logger,
) (sessions.SessionService, error) {
	return &sessionService{
		store:     store,
		repo:      repo,
		processor: processor,
		logger:    logger,
	}, nil
}

// Create starts a new session without key material and records its metadata.
func (s *sessionService) Create(ctx context.Context) (*sessions.SessionMeta, error) {
	now := time.Now().UTC()
	session := &sessions.Session{
		ID:              uuid.New().String(),
		DateTimeCreated: now,
	}

	meta := &sessions.SessionMeta{
		ID:              session.ID,
		Algorithm:       "RSA",
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}

	s.store.Put(session)
	if err := s.repo.Create(ctx, meta); err != nil {
		// keep store and repository consistent
		_ = s.store.Delete(session.ID)
		return nil, fmt.Errorf("failed to record session metadata: %w", err)
	}

	s.logger.Info("Created session ", session.ID)
	return meta, nil
}

// GetByID retrieves the metadata of a session by its unique ID.
func (s *sessionService) GetByID(ctx context.Context, sessionID string) (*sessions.SessionMeta, error) {
	return s.repo.GetByID(ctx, sessionID)
}

// List retrieves all session metadata considering a query filter when set.
func (s *sessionService) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.SessionMeta, error) {
	return s.repo.List(ctx, query)
}

// DeleteByID tears a session down, discarding its key material and deleting
// its metadata.
func (s *sessionService) DeleteByID(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session metadata: %w", err)
	}

	s.logger.Info("Deleted session ", sessionID)
	return nil
}

// GenerateKeys generates a key pair for the session, replacing any previous
// one and invalidating the recorded ciphertext.
func (s *sessionService) GenerateKeys(ctx context.Context, sessionID string, params sessions.KeyGenParams) (*rsaDomain.KeyPair, error) {
	if _, err := s.store.Get(sessionID); err != nil {
		return nil, err
	}

	var keyPair *rsaDomain.KeyPair
	var err error
	if params.FromPrimes() {
		keyPair, err = s.processor.GenerateKeyPair(params.P, params.Q)
	} else {
		bits := params.Bits
		if bits == 0 {
			bits = defaultKeyBits
		}
		e := params.E
		if e == 0 {
			e = defaultPublicExponent
		}
		keyPair, err = s.processor.GenerateRandomKeyPair(bits, e)
	}
	if err != nil {
		return nil, err
	}

	// metadata first, so a failed operation leaves the session unchanged
	if err := s.touchMeta(ctx, sessionID, uint32(keyPair.N.BitLen())); err != nil {
		return nil, err
	}

	if err := s.store.Update(sessionID, func(live *sessions.Session) {
		live.KeyPair = keyPair
		live.LastCiphertext = nil
	}); err != nil {
		return nil, err
	}

	return keyPair, nil
}

// Encrypt encrypts plaintext with the session's public key and records the
// result as the session's last ciphertext.
func (s *sessionService) Encrypt(ctx context.Context, sessionID, plaintext, mode string) (*sessions.CipherResult, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.KeyPair == nil {
		return nil, sessions.ErrNoKeyPair
	}

	result := &sessions.CipherResult{Mode: mode}
	switch mode {
	case "", sessions.EncodingRunes:
		result.Mode = sessions.EncodingRunes
		result.Values, err = s.processor.Encrypt(plaintext, session.KeyPair.Public())
	case sessions.EncodingText:
		result.Base64, err = s.processor.EncryptText(plaintext, session.KeyPair.Public())
	default:
		return nil, fmt.Errorf("unsupported encoding mode: %s", mode)
	}
	if err != nil {
		return nil, err
	}

	// metadata first, so a failed operation leaves the session unchanged
	if err := s.touchMeta(ctx, sessionID, uint32(session.KeyPair.N.BitLen())); err != nil {
		return nil, err
	}

	if err := s.store.Update(sessionID, func(live *sessions.Session) {
		live.LastCiphertext = result
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// Decrypt decrypts the supplied ciphertext, or the session's last one when
// none is given, with the session's private key.
func (s *sessionService) Decrypt(ctx context.Context, sessionID string, input sessions.CipherInput) (string, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	if session.KeyPair == nil {
		return "", sessions.ErrNoKeyPair
	}

	if input.Empty() {
		if session.LastCiphertext == nil {
			return "", sessions.ErrNoCiphertext
		}
		input = sessions.CipherInput{
			Mode:   session.LastCiphertext.Mode,
			Values: session.LastCiphertext.Values,
			Base64: session.LastCiphertext.Base64,
		}
	}

	var plaintext string
	switch {
	case len(input.Values) > 0:
		plaintext, err = s.processor.Decrypt(input.Values, session.KeyPair.Private())
	case input.Base64 != "":
		plaintext, err = s.processor.DecryptText(input.Base64, session.KeyPair.Private())
	default:
		return "", sessions.ErrNoCiphertext
	}
	if err != nil {
		return "", err
	}

	if err := s.touchMeta(ctx, sessionID, uint32(session.KeyPair.N.BitLen())); err != nil {
		return "", err
	}

	return plaintext, nil
}

// touchMeta bumps the session's operation counter and key size.
func (s *sessionService) touchMeta(ctx context.Context, sessionID string, keySize uint32) error {
	meta, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session metadata: %w", err)
	}

	meta.KeySize = keySize
	meta.Operations++
	meta.DateTimeUpdated = time.Now().UTC()

	if err := s.repo.UpdateByID(ctx, meta); err != nil {
		return fmt.Errorf("failed to update session metadata: %w", err)
	}
	return nil
}
