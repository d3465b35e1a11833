// Package server implements the flow health-probe HTTP service.
package server

import (
	"os"
	"strings"
)

// Settings holds static service metadata and environment-aware flags.
type Settings struct {
	AppName     string
	Environment string
	Version     string
	Debug       bool
}

// SettingsFromEnv reads service settings from FLOW_APP_NAME, FLOW_ENV,
// FLOW_VERSION, and FLOW_DEBUG, with development defaults.
func SettingsFromEnv() Settings {
	return Settings{
		AppName:     envOr("FLOW_APP_NAME", "flow API"),
		Environment: envOr("FLOW_ENV", "development"),
		Version:     envOr("FLOW_VERSION", "0.1.0"),
		Debug:       truthy(os.Getenv("FLOW_DEBUG")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
