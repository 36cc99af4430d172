package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrMissingField    = errors.New("required field missing")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrSameDir         = errors.New("siteDir must differ from markupDir")
)

// MaxPathLength bounds every path field (PATH_MAX on Linux).
const MaxPathLength = 4096

// appDirName is the directory searched under the user config dir.
const appDirName = "go-md2site"

// Config is the on-disk build configuration.
// Only these three keys are recognized; anything else fails strict decoding.
type Config struct {
	MarkupDir string `yaml:"markupDir"` // Markup sources, listed non-recursively
	SiteDir   string `yaml:"siteDir"`   // Output directory, created if absent
	Template  string `yaml:"template"`  // Optional page template path
}

// Validate checks required fields and path lengths.
// Called automatically by LoadConfig, but available for configs assembled
// from flags or environment variables.
func (c *Config) Validate() error {
	if c.MarkupDir == "" {
		return fmt.Errorf("%w: markupDir", ErrMissingField)
	}
	if c.SiteDir == "" {
		return fmt.Errorf("%w: siteDir", ErrMissingField)
	}

	if err := validateFieldLength("markupDir", c.MarkupDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("siteDir", c.SiteDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template", c.Template, MaxPathLength); err != nil {
		return err
	}

	if filepath.Clean(c.MarkupDir) == filepath.Clean(c.SiteDir) {
		return fmt.Errorf("%w: both are %q", ErrSameDir, c.MarkupDir)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads and validates configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	cfg, err := Read(nameOrPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read decodes a config file without validating it, so callers can fill
// missing fields from flags or environment variables before Validate.
func Read(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
// Extensions: .yaml, .yml. Locations: current directory, <user config dir>/go-md2site/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
