package v1

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"rsa_demo_service/internal/domain/sessions"

	"github.com/gin-gonic/gin"
)

// SessionHandler defines the interface for handling session-related operations
type SessionHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type sessionHandler struct {
	sessionService sessions.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService sessions.SessionService) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
	}
}

// Create handles the POST request to start a new session
func (handler *sessionHandler) Create(ctx *gin.Context) {
	meta, err := handler.sessionService.Create(ctx)
	if err != nil {
		respondWithError(ctx, err, "error creating session")
		return
	}

	ctx.JSON(http.StatusCreated, toSessionResponse(meta))
}

// List handles the GET request to list session metadata with optional query parameters
func (handler *sessionHandler) List(ctx *gin.Context) {
	query := &sessions.SessionQuery{
		Algorithm: ctx.Query("algorithm"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); dateTimeCreated != "" {
		parsed, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsed
	}
	if limit := ctx.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid limit: %v", err)})
			return
		}
		query.Limit = parsed
	}
	if offset := ctx.Query("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid offset: %v", err)})
			return
		}
		query.Offset = parsed
	}

	metas, err := handler.sessionService.List(ctx, query)
	if err != nil {
		respondWithError(ctx, err, "error listing sessions")
		return
	}

	listResponse := []SessionResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, toSessionResponse(meta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch one session's metadata
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	meta, err := handler.sessionService.GetByID(ctx, sessionID)
	if err != nil {
		respondWithError(ctx, err, "error fetching session")
		return
	}

	ctx.JSON(http.StatusOK, toSessionResponse(meta))
}

// DeleteByID handles the DELETE request to tear a session down
func (handler *sessionHandler) DeleteByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := handler.sessionService.DeleteByID(ctx, sessionID); err != nil {
		respondWithError(ctx, err, "error deleting session")
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("session %s deleted", sessionID)})
}

// GenerateKeys handles the POST request to generate the session's key pair
func (handler *sessionHandler) GenerateKeys(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request GenerateKeysRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key generation data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	params := sessions.KeyGenParams{Bits: request.Bits, E: request.E}
	if request.P != "" {
		p, ok := new(big.Int).SetString(request.P, 10)
		if !ok {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "p is not a valid decimal integer"})
			return
		}
		q, ok := new(big.Int).SetString(request.Q, 10)
		if !ok {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "q is not a valid decimal integer"})
			return
		}
		params.P, params.Q = p, q
	}

	keyPair, err := handler.sessionService.GenerateKeys(ctx, sessionID, params)
	if err != nil {
		respondWithError(ctx, err, "error generating keys")
		return
	}

	ctx.JSON(http.StatusCreated, KeyPairResponse{
		N: keyPair.N.String(),
		E: keyPair.E.String(),
		D: keyPair.D.String(),
	})
}

// Encrypt handles the POST request to encrypt a plaintext with the session's public key
func (handler *sessionHandler) Encrypt(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	result, err := handler.sessionService.Encrypt(ctx, sessionID, request.Plaintext, request.Mode)
	if err != nil {
		respondWithError(ctx, err, "error encrypting message")
		return
	}

	response := EncryptResponse{Mode: result.Mode, CipherB64: result.Base64}
	for _, value := range result.Values {
		response.Cipher = append(response.Cipher, value.String())
	}

	ctx.JSON(http.StatusOK, response)
}

// Decrypt handles the POST request to decrypt a ciphertext with the session's private key
func (handler *sessionHandler) Decrypt(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	input := sessions.CipherInput{Base64: request.CipherB64}
	for i, value := range request.Cipher {
		parsed, ok := new(big.Int).SetString(value, 10)
		if !ok {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("cipher value at index %d is not a valid decimal integer", i)})
			return
		}
		input.Values = append(input.Values, parsed)
	}

	plaintext, err := handler.sessionService.Decrypt(ctx, sessionID, input)
	if err != nil {
		respondWithError(ctx, err, "error decrypting message")
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}

// respondWithError maps domain errors to HTTP status codes.
func respondWithError(ctx *gin.Context, err error, prefix string) {
	status := http.StatusBadRequest
	if errors.Is(err, sessions.ErrSessionNotFound) {
		status = http.StatusNotFound
	}

	ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("%s: %v", prefix, err)})
}

func toSessionResponse(meta *sessions.SessionMeta) SessionResponse {
	return SessionResponse{
		ID:              meta.ID,
		Algorithm:       meta.Algorithm,
		KeySize:         meta.KeySize,
		Operations:      meta.Operations,
		DateTimeCreated: meta.DateTimeCreated,
		DateTimeUpdated: meta.DateTimeUpdated,
	}
}
