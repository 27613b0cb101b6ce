package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-authgate/loginapi/internal/services"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	credentialService *services.CredentialService
}

func NewHealthHandler(cs *services.CredentialService) *HealthHandler {
	return &HealthHandler{credentialService: cs}
}

// Check godoc
//
//	@Summary		Health check
//	@Description	Check server and credential store health status
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	object{status=string,store=string}	"Service is healthy"
//	@Failure		503	{object}	object{status=string,store=string}	"Service is unhealthy"
//	@Router			/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	switch err := h.credentialService.Health(ctx); err {
	case nil:
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"store":  "connected",
		})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "disconnected",
		})
	}
}
