package v1

import (
	"rsa_demo_service/internal/domain/sessions"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, sessionService sessions.SessionService) {
	v1 := r.Group(BasePath) // lookup in version file

	sessionHandler := NewSessionHandler(sessionService)
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions", sessionHandler.List)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.DELETE("/sessions/:id", sessionHandler.DeleteByID)
	v1.POST("/sessions/:id/keys", sessionHandler.GenerateKeys)
	v1.POST("/sessions/:id/encrypt", sessionHandler.Encrypt)
	v1.POST("/sessions/:id/decrypt", sessionHandler.Decrypt)
}
