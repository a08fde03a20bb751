//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/domain/sessions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(service sessions.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, service)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func sampleMeta() *sessions.SessionMeta {
	now := time.Now().UTC()
	return &sessions.SessionMeta{
		ID:              uuid.New().String(),
		Algorithm:       "RSA",
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

func TestSessionHandler_Create(t *testing.T) {
	mockService := new(MockSessionService)
	router := setupRouter(mockService)

	meta := sampleMeta()
	mockService.On("Create", mock.Anything).Return(meta, nil)

	recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions", nil)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response SessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, meta.ID, response.ID)
	assert.Equal(t, "RSA", response.Algorithm)

	mockService.AssertExpectations(t)
}

func TestSessionHandler_List(t *testing.T) {
	t.Run("NoFilter", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		metas := []*sessions.SessionMeta{sampleMeta(), sampleMeta()}
		mockService.On("List", mock.Anything, mock.Anything).Return(metas, nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/sessions", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []SessionResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Len(t, response, 2)
	})

	t.Run("WithQueryParameters", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("List", mock.Anything, mock.MatchedBy(func(q *sessions.SessionQuery) bool {
			return q.Algorithm == "RSA" && q.Limit == 5 && q.Offset == 10 && q.SortBy == "date_time_created"
		})).Return([]*sessions.SessionMeta{}, nil)

		recorder := performRequest(t, router, http.MethodGet,
			"/api/v1/sessions?algorithm=RSA&limit=5&offset=10&sortBy=date_time_created", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/sessions?limit=ten", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("InvalidDateTimeCreated", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/sessions?dateTimeCreated=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSessionHandler_GetByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		meta := sampleMeta()
		mockService.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/sessions/"+meta.ID, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("GetByID", mock.Anything, "missing").Return(nil, sessions.ErrSessionNotFound)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/sessions/missing", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSessionHandler_DeleteByID(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("DeleteByID", mock.Anything, "abc").Return(nil)

		recorder := performRequest(t, router, http.MethodDelete, "/api/v1/sessions/abc", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("DeleteByID", mock.Anything, "missing").Return(sessions.ErrSessionNotFound)

		recorder := performRequest(t, router, http.MethodDelete, "/api/v1/sessions/missing", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSessionHandler_GenerateKeys(t *testing.T) {
	keyPair := &rsaDomain.KeyPair{
		N: big.NewInt(3233),
		E: big.NewInt(17),
		D: big.NewInt(2753),
	}

	t.Run("FromPrimes", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("GenerateKeys", mock.Anything, "abc", mock.MatchedBy(func(p sessions.KeyGenParams) bool {
			return p.FromPrimes() && p.P.Int64() == 61 && p.Q.Int64() == 53
		})).Return(keyPair, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/keys",
			GenerateKeysRequest{P: "61", Q: "53"})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response KeyPairResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "3233", response.N)
		assert.Equal(t, "17", response.E)
		assert.Equal(t, "2753", response.D)
	})

	t.Run("Random", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("GenerateKeys", mock.Anything, "abc", mock.MatchedBy(func(p sessions.KeyGenParams) bool {
			return !p.FromPrimes() && p.Bits == 512 && p.E == 65537
		})).Return(keyPair, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/keys",
			GenerateKeysRequest{Bits: 512, E: 65537})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("PrimeWithoutPartner", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/keys",
			GenerateKeysRequest{P: "61"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("NonNumericPrime", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/keys",
			GenerateKeysRequest{P: "sixty-one", Q: "53"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("InvalidPrimes", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("GenerateKeys", mock.Anything, "abc", mock.Anything).
			Return(nil, &rsaDomain.InvalidKeyError{Reason: "p = 60 is not prime"})

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/keys",
			GenerateKeysRequest{P: "60", Q: "53"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSessionHandler_Encrypt(t *testing.T) {
	t.Run("Runes", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		result := &sessions.CipherResult{
			Mode:   sessions.EncodingRunes,
			Values: []*big.Int{big.NewInt(2790)},
		}
		mockService.On("Encrypt", mock.Anything, "abc", "A", "").Return(result, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/encrypt",
			EncryptRequest{Plaintext: "A"})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response EncryptResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, sessions.EncodingRunes, response.Mode)
		assert.Equal(t, []string{"2790"}, response.Cipher)
		assert.Empty(t, response.CipherB64)
	})

	t.Run("Text", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		result := &sessions.CipherResult{Mode: sessions.EncodingText, Base64: "Crg="}
		mockService.On("Encrypt", mock.Anything, "abc", "A", "text").Return(result, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/encrypt",
			EncryptRequest{Plaintext: "A", Mode: "text"})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response EncryptResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Crg=", response.CipherB64)
	})

	t.Run("MissingPlaintext", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/encrypt",
			EncryptRequest{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("NoKeyPair", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("Encrypt", mock.Anything, "abc", "A", "").Return(nil, sessions.ErrNoKeyPair)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/encrypt",
			EncryptRequest{Plaintext: "A"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSessionHandler_Decrypt(t *testing.T) {
	t.Run("ExplicitCipher", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("Decrypt", mock.Anything, "abc", mock.MatchedBy(func(input sessions.CipherInput) bool {
			return len(input.Values) == 1 && input.Values[0].Int64() == 2790
		})).Return("A", nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/decrypt",
			DecryptRequest{Cipher: []string{"2790"}})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response DecryptResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "A", response.Plaintext)
	})

	t.Run("LastCiphertextFallback", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("Decrypt", mock.Anything, "abc", mock.MatchedBy(func(input sessions.CipherInput) bool {
			return input.Empty()
		})).Return("A", nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/decrypt",
			DecryptRequest{})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("BothRepresentations", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/decrypt",
			DecryptRequest{Cipher: []string{"2790"}, CipherB64: "Crg="})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("NoCiphertext", func(t *testing.T) {
		mockService := new(MockSessionService)
		router := setupRouter(mockService)

		mockService.On("Decrypt", mock.Anything, "abc", mock.Anything).Return("", sessions.ErrNoCiphertext)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/sessions/abc/decrypt",
			DecryptRequest{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
