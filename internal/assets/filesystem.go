package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// MaxTemplateSize caps template files at 4MB.
const MaxTemplateSize = 4 << 20

// ReadFileFunc reads a whole file, like os.ReadFile.
type ReadFileFunc func(path string) ([]byte, error)

// FileLoader loads templates from disk.
type FileLoader struct {
	readFile ReadFileFunc
}

// NewFileLoader creates a FileLoader. A nil readFile means os.ReadFile.
func NewFileLoader(readFile ReadFileFunc) *FileLoader {
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &FileLoader{readFile: readFile}
}

// LoadTemplate reads the template at path.
// Errors wrap both the asset sentinel and the underlying I/O error.
func (f *FileLoader) LoadTemplate(path string) (string, error) {
	content, err := f.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrTemplateNotFound, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTemplateRead, err)
	}
	if len(content) > MaxTemplateSize {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTemplateTooLarge, path, len(content), MaxTemplateSize)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ TemplateLoader = (*FileLoader)(nil)
