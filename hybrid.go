package md2site

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/edn"
)

// Header is the structured part of a hybrid document: an EDN map.
// Keyword keys are looked up with Header.Get("title") or header[Keyword("title")].
type Header = edn.Map

// Keyword is an EDN keyword such as :title, stored without the colon.
type Keyword = edn.Keyword

const byteOrderMark = "\uFEFF"

// PreprocessHybrid splits text into its leading EDN map and the lines after it.
//
// The map may span several lines; its own syntax decides where it ends.
// The rest of the map's last line, minus spaces, tabs and one line break, is
// dropped when empty and otherwise becomes the first body line. Body lines
// lose trailing whitespace and are joined with "\n".
//
// A leading byte order mark is ignored. Errors match ErrParse.
func PreprocessHybrid(text string) (Header, string, error) {
	text = strings.TrimPrefix(text, byteOrderMark)

	v, n, err := edn.ReadValue(text)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	header, ok := v.(edn.Map)
	if !ok {
		return nil, "", fmt.Errorf("%w: header must be a map, got %s", ErrParse, describe(v))
	}

	return header, hybridBody(text[n:]), nil
}

// FormatHeader serializes h back to EDN text.
// FormatHeader(h) + "\n" + body parses to the same header and body.
func FormatHeader(h Header) string {
	return edn.Format(h)
}

// hybridBody drops the separator that ends the header and normalizes lines.
func hybridBody(rest string) string {
	rest = strings.TrimLeft(rest, " \t")
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		rest = rest[2:]
	case strings.HasPrefix(rest, "\n"), strings.HasPrefix(rest, "\r"):
		rest = rest[1:]
	}
	if rest == "" {
		return ""
	}

	rest = strings.ReplaceAll(rest, "\r\n", "\n")
	rest = strings.ReplaceAll(rest, "\r", "\n")
	lines := strings.Split(rest, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case edn.Vector:
		return "vector"
	case edn.List:
		return "list"
	case edn.Set:
		return "set"
	case string:
		return "string"
	case edn.Keyword:
		return "keyword"
	case edn.Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("%T", v)
	}
}
