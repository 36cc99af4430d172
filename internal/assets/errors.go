package assets

import "errors"

// Sentinel errors for template loading.
var (
	// ErrTemplateNotFound indicates the template file or built-in does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplateName indicates a built-in name with forbidden characters.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrTemplateRead indicates an I/O error other than a missing file.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrTemplateTooLarge indicates the template exceeds MaxTemplateSize.
	ErrTemplateTooLarge = errors.New("template exceeds maximum size")
)
