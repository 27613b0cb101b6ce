package bootstrap

import (
	"log"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"
	"github.com/go-authgate/loginapi/internal/metrics"
	"github.com/go-authgate/loginapi/internal/middleware"
	"github.com/go-authgate/loginapi/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/go-authgate/loginapi/api" // swagger docs
)

// setupRouter configures the Gin router with all routes and middleware
func setupRouter(cfg *config.Config, h handlerSet, recorder core.Recorder) *gin.Engine {
	// Setup Gin mode
	setupGinMode(cfg)
	r := gin.New()

	// Setup middleware
	r.Use(metrics.HTTPMetricsMiddleware(recorder))
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health check endpoint
	r.GET("/health", h.health.Check)

	// Setup metrics endpoint
	setupMetricsEndpoint(r, cfg)

	// API documentation
	setupSwagger(r, cfg)

	// Credential API
	api := r.Group("/api")
	{
		api.POST("/login", h.auth.Login)
		api.POST("/forgot", h.auth.Forgot)
	}

	// Log server startup info
	logServerStartup(cfg)

	return r
}

// setupMetricsEndpoint exposes Prometheus metrics when enabled
func setupMetricsEndpoint(r *gin.Engine, cfg *config.Config) {
	if !cfg.MetricsEnabled {
		return
	}
	r.GET(
		"/metrics",
		middleware.MetricsAuthMiddleware(cfg.MetricsToken),
		gin.WrapH(promhttp.Handler()),
	)
}

// setupSwagger serves the generated OpenAPI document and UI
func setupSwagger(r *gin.Engine, cfg *config.Config) {
	if !cfg.EnableSwagger {
		return
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupGinMode sets Gin mode based on environment configuration
func setupGinMode(cfg *config.Config) {
	mode := ginModeMap[cfg.IsProduction]
	gin.SetMode(mode)
	log.Printf("Gin mode: %s", ginModeLogMessage[cfg.IsProduction])
}

var ginModeMap = map[bool]string{
	true:  gin.ReleaseMode,
	false: gin.DebugMode,
}

var ginModeLogMessage = map[bool]string{
	true:  "Release (production)",
	false: "Debug (development)",
}

// logServerStartup logs server startup information
func logServerStartup(cfg *config.Config) {
	log.Printf("%s starting on %s (credential store: %s)", version.String(), cfg.ServerAddr, cfg.CredentialStore)
	if cfg.EnableSwagger {
		log.Printf("Server running on: %s/swagger/index.html", cfg.BaseURL)
	} else {
		log.Printf("Server running on: %s", cfg.BaseURL)
	}
}
