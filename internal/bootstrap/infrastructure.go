package bootstrap

import (
	"context"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"
	"github.com/go-authgate/loginapi/internal/metrics"
	"github.com/go-authgate/loginapi/internal/store"
)

// initializeRepository opens the credential store selected by CREDENTIAL_STORE
func initializeRepository(ctx context.Context, cfg *config.Config) (core.CredentialRepository, error) {
	return store.NewRepository(ctx, cfg)
}

// initializeMetrics returns the Prometheus recorder, or a no-op one when metrics are disabled
func initializeMetrics(cfg *config.Config) core.Recorder {
	return metrics.Init(cfg.MetricsEnabled)
}
