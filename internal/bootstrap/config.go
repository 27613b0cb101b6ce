package bootstrap

import (
	"fmt"
	"log"

	"github.com/go-authgate/loginapi/internal/auth"
	"github.com/go-authgate/loginapi/internal/config"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateHasherConfig(cfg); err != nil {
		return fmt.Errorf("invalid password hasher configuration: %w", err)
	}
	warnInsecureDefaults(cfg)
	return nil
}

// validateHasherConfig checks cost parameters by building the hashers once
func validateHasherConfig(cfg *config.Config) error {
	_, err := auth.NewHasher(cfg)
	return err
}

// warnInsecureDefaults logs settings that are fine for a demo but not for production
func warnInsecureDefaults(cfg *config.Config) {
	if !cfg.IsProduction {
		return
	}
	if cfg.SeedPassword == "12345678" {
		log.Printf("[Bootstrap] WARNING: seed user %q uses the default password", cfg.SeedUsername)
	}
	if cfg.MetricsEnabled && cfg.MetricsToken == "" {
		log.Println("[Bootstrap] WARNING: /metrics is exposed without METRICS_TOKEN")
	}
}
