//go:build unit
// +build unit

package v1

import (
	"context"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/domain/sessions"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*sessions.SessionMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.SessionMeta), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, sessionID string) (*sessions.SessionMeta, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.SessionMeta), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.SessionMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.SessionMeta), args.Error(1)
}

func (m *MockSessionService) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) GenerateKeys(ctx context.Context, sessionID string, params sessions.KeyGenParams) (*rsaDomain.KeyPair, error) {
	args := m.Called(ctx, sessionID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.KeyPair), args.Error(1)
}

func (m *MockSessionService) Encrypt(ctx context.Context, sessionID, plaintext, mode string) (*sessions.CipherResult, error) {
	args := m.Called(ctx, sessionID, plaintext, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.CipherResult), args.Error(1)
}

func (m *MockSessionService) Decrypt(ctx context.Context, sessionID string, input sessions.CipherInput) (string, error) {
	args := m.Called(ctx, sessionID, input)
	return args.String(0), args.Error(1)
}
