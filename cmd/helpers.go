package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renlliang3/astrobase/internal/config"
	"github.com/renlliang3/astrobase/internal/manifest"
)

// loadConfig loads and validates the config, providing a user-friendly
// error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cpviewer init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLoader creates a manifest loader with the configured fetch timeout.
func newLoader(cfg *config.Config) *manifest.Loader {
	return manifest.NewLoader(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
}

// loadManifest fetches and parses the configured manifest.
func loadManifest(ctx context.Context, cfg *config.Config) (manifest.Manifest, error) {
	return newLoader(cfg).Load(ctx, cfg.ManifestSource())
}
