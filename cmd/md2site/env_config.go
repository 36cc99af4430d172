package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	MarkupDir  string // MD2SITE_MARKUP_DIR: markup source directory
	SiteDir    string // MD2SITE_SITE_DIR: site output directory
	Template   string // MD2SITE_TEMPLATE: template path or built-in name
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":     true,
	"MD2SITE_MARKUP_DIR": true,
	"MD2SITE_SITE_DIR":   true,
	"MD2SITE_TEMPLATE":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("MD2SITE_CONFIG"),
		MarkupDir:  os.Getenv("MD2SITE_MARKUP_DIR"),
		SiteDir:    os.Getenv("MD2SITE_SITE_DIR"),
		Template:   os.Getenv("MD2SITE_TEMPLATE"),
	}
}

// warnUnknownEnvVars prints warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_SITEDIR instead of MD2SITE_SITE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overwrites config file values with set environment variables.
// Flags are applied afterwards by mergeFlags, giving flags > env > file.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.MarkupDir != "" {
		cfg.MarkupDir = env.MarkupDir
	}
	if env.SiteDir != "" {
		cfg.SiteDir = env.SiteDir
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
}
