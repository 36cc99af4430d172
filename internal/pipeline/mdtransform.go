package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders live in the Unicode Private Use Area so they pass
// through Goldmark untouched and never collide with real text.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

const byteOrderMark = "\uFEFF"

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// MarkupPreprocessor rewrites markup text before HTML conversion.
type MarkupPreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// CommonMarkPreprocessor prepares CommonMark text for Goldmark.
type CommonMarkPreprocessor struct{}

// Preprocess strips a leading byte order mark, normalizes line endings,
// turns ==text== into highlight placeholders and caps blank-line runs at one
// empty line. A canceled context returns content unchanged.
func (p *CommonMarkPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags.
// Runs on converter output, so Goldmark never needs unsafe HTML rendering.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
