package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads built-in templates by name.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate returns the built-in template called name (without .html).
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: built-in %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Builtins lists the names of the built-in templates, sorted.
func Builtins() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
