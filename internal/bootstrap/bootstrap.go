package bootstrap

import (
	"context"
	"net/http"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"
	"github.com/go-authgate/loginapi/internal/services"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	Repository      core.CredentialRepository
	MetricsRecorder core.Recorder

	// Services
	CredentialService *services.CredentialService

	// HTTP
	HandlerSet handlerSet
	Router     *gin.Engine
	Server     *http.Server
}

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config) error {
	app := &Application{Config: cfg}

	// Phase 1: Validate configuration
	if err := validateAllConfiguration(cfg); err != nil {
		return err
	}

	// Phases 2-4: Build infrastructure, business and HTTP layers
	if err := app.initialize(ctx); err != nil {
		app.closeRepository()
		return err
	}

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()

	return nil
}

func (app *Application) initialize(ctx context.Context) error {
	if err := app.initializeInfrastructure(ctx); err != nil {
		return err
	}
	if err := app.initializeBusinessLayer(ctx); err != nil {
		return err
	}
	app.initializeHTTPLayer()
	return nil
}

// initializeInfrastructure sets up the credential repository and metrics
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	app.Repository, err = initializeRepository(ctx, app.Config)
	if err != nil {
		return err
	}

	app.MetricsRecorder = initializeMetrics(app.Config)
	return nil
}

// initializeBusinessLayer sets up the credential service and seeds the default account
func (app *Application) initializeBusinessLayer(ctx context.Context) error {
	var err error

	app.CredentialService, err = initializeServices(app.Config, app.Repository, app.MetricsRecorder)
	if err != nil {
		return err
	}

	return seedDefaultUser(ctx, app.Config, app.CredentialService)
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() {
	app.HandlerSet = initializeHandlers(app.CredentialService)
	app.Router = setupRouter(app.Config, app.HandlerSet, app.MetricsRecorder)
	app.Server = createHTTPServer(app.Config, app.Router)
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	// Add jobs
	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server, app.Config.ShutdownTimeout)
	addRepositoryShutdownJob(m, app.Repository)

	// Wait for graceful shutdown
	<-m.Done()
}

func (app *Application) closeRepository() {
	if app.Repository != nil {
		_ = app.Repository.Close()
	}
}
