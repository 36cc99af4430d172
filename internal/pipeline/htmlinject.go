package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sentinel errors for page template validation.
var (
	ErrMarkerNotFound   = errors.New("template has no body marker")
	ErrMarkerDuplicated = errors.New("template has more than one body marker")
)

// BodyMarkerID is the id attribute value of the div that receives page HTML.
const BodyMarkerID = "_body"

// DefaultTemplate is used when no template file is configured.
const DefaultTemplate = "<DIV ID='_body'></DIV>"

// Marker holds the byte offsets of a body marker inside a template.
// The opening tag spans [OpenStart, OpenEnd) and the closing tag
// spans [CloseStart, CloseEnd).
type Marker struct {
	OpenStart  int
	OpenEnd    int
	CloseStart int
	CloseEnd   int
}

// FindBodyMarker scans tmpl for the single body marker: a div start tag
// whose id is "_body" followed by a div end tag, with at most whitespace
// between them. Tag names, attribute names and the id value compare
// case-insensitively, and any attribute quoting style is accepted.
// Markup inside comments, scripts and other raw-text elements is ignored.
func FindBodyMarker(tmpl string) (Marker, error) {
	z := html.NewTokenizer(strings.NewReader(tmpl))

	var (
		found   []Marker
		pending *Marker
		offset  int
	)

	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return Marker{}, fmt.Errorf("scanning template: %w", err)
			}
			break
		}

		if pending != nil {
			switch {
			case tt == html.TextToken && strings.TrimSpace(string(z.Raw())) == "":
				continue
			case tt == html.EndTagToken && isDiv(z):
				pending.CloseStart = start
				pending.CloseEnd = offset
				found = append(found, *pending)
				pending = nil
				continue
			default:
				pending = nil
			}
		}

		if tt == html.StartTagToken && isBodyMarkerOpen(z) {
			pending = &Marker{OpenStart: start, OpenEnd: offset}
		}
	}

	switch len(found) {
	case 0:
		return Marker{}, ErrMarkerNotFound
	case 1:
		return found[0], nil
	default:
		return Marker{}, fmt.Errorf("%w: found %d", ErrMarkerDuplicated, len(found))
	}
}

func isDiv(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return string(name) == "div"
}

func isBodyMarkerOpen(z *html.Tokenizer) bool {
	name, hasAttr := z.TagName()
	if string(name) != "div" {
		return false
	}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "id" && strings.EqualFold(string(val), BodyMarkerID) {
			return true
		}
	}
	return false
}

// PageTemplate is a template split around its body marker.
// Build one per site build and reuse it for every page.
type PageTemplate struct {
	head string
	tail string
}

// ParsePageTemplate validates tmpl and splits it at the body marker.
// An empty tmpl selects DefaultTemplate.
func ParsePageTemplate(tmpl string) (*PageTemplate, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}

	m, err := FindBodyMarker(tmpl)
	if err != nil {
		return nil, err
	}

	return &PageTemplate{
		head: tmpl[:m.OpenEnd],
		tail: tmpl[m.CloseStart:],
	}, nil
}

// Render places fragment between the marker's opening and closing tags.
// Everything else in the template is kept byte for byte.
func (p *PageTemplate) Render(fragment string) string {
	var b strings.Builder
	b.Grow(len(p.head) + len(fragment) + len(p.tail))
	b.WriteString(p.head)
	b.WriteString(fragment)
	b.WriteString(p.tail)
	return b.String()
}

// InjectBody is the one-shot form of ParsePageTemplate followed by Render.
func InjectBody(tmpl, fragment string) (string, error) {
	p, err := ParsePageTemplate(tmpl)
	if err != nil {
		return "", err
	}
	return p.Render(fragment), nil
}
