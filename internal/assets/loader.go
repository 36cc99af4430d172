package assets

import "errors"

// TemplateLoader loads a page template from a reference.
type TemplateLoader interface {
	LoadTemplate(ref string) (string, error)
}

// Resolver reads template files, falling back to the embedded loader for
// bare names that match no file.
type Resolver struct {
	embedded TemplateLoader
	files    TemplateLoader
}

// NewResolver creates a Resolver reading files through readFile.
func NewResolver(readFile ReadFileFunc) *Resolver {
	return &Resolver{
		embedded: NewEmbeddedLoader(),
		files:    NewFileLoader(readFile),
	}
}

// LoadTemplate implements TemplateLoader.
// An existing file always wins over a built-in template of the same name.
func (r *Resolver) LoadTemplate(ref string) (string, error) {
	content, err := r.files.LoadTemplate(ref)
	if err != nil && IsBuiltinName(ref) && errors.Is(err, ErrTemplateNotFound) {
		return r.embedded.LoadTemplate(ref)
	}
	return content, err
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
