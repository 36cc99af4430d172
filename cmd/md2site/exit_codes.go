package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or header
	ExitIO      = 3 // Missing directory, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template and header errors come first: a missing template file also
	// matches os.ErrNotExist but is a usage problem.
	if errors.Is(err, md2site.ErrTemplate) ||
		errors.Is(err, md2site.ErrParse) ||
		errors.Is(err, md2site.ErrInvalidConfig) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrSameDir) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	if errors.Is(err, md2site.ErrFileSystem) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
