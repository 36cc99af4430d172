package md2site

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a build matches exactly one of them.
var (
	ErrFileSystem       = errors.New("file system error")
	ErrTemplate         = errors.New("template error")
	ErrMarkupConversion = errors.New("markup conversion failed")
	ErrParse            = errors.New("parse error")
	ErrInvalidConfig    = errors.New("invalid build config")
)

// BuildError reports the path being processed when a build failed.
// Path is the source file for per-page failures, otherwise the directory
// or template involved.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// newBuildError wraps cause with kind so both stay reachable through errors.Is.
func newBuildError(path string, kind, cause error) *BuildError {
	return &BuildError{Path: path, Err: fmt.Errorf("%w: %w", kind, cause)}
}
