package bootstrap

import (
	"github.com/go-authgate/loginapi/internal/handlers"
	"github.com/go-authgate/loginapi/internal/services"
)

// handlerSet holds all HTTP handlers
type handlerSet struct {
	auth   *handlers.AuthHandler
	health *handlers.HealthHandler
}

// initializeHandlers creates all HTTP handlers
func initializeHandlers(cs *services.CredentialService) handlerSet {
	return handlerSet{
		auth:   handlers.NewAuthHandler(cs),
		health: handlers.NewHealthHandler(cs),
	}
}
