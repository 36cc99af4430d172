package edn

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxDepth bounds nesting so hostile input cannot exhaust the stack.
const maxDepth = 512

// ReadValue reads exactly one value from the start of src.
// n is the byte offset just past the value; leading whitespace, commas,
// comments and discarded values before it are included in n, anything after
// it is left untouched.
func ReadValue(src string) (v any, n int, err error) {
	r := &reader{src: src}
	v, err = r.read(0)
	if err != nil {
		return nil, 0, err
	}
	return v, r.pos, nil
}

type reader struct {
	src string
	pos int
}

func (r *reader) read(depth int) (any, error) {
	if depth > maxDepth {
		return nil, r.errorf(r.pos, "nesting deeper than %d", maxDepth)
	}
	if err := r.skipIgnored(depth); err != nil {
		return nil, err
	}
	if r.pos >= len(r.src) {
		return nil, r.errorf(r.pos, "unexpected end of input")
	}

	switch c := r.src[r.pos]; c {
	case '(':
		r.pos++
		items, err := r.readSeq(')', depth)
		if err != nil {
			return nil, err
		}
		return List(items), nil
	case '[':
		r.pos++
		items, err := r.readSeq(']', depth)
		if err != nil {
			return nil, err
		}
		return Vector(items), nil
	case '{':
		return r.readMap(depth)
	case ')', ']', '}':
		return nil, r.errorf(r.pos, "unexpected %q", c)
	case '"':
		return r.readString()
	case '\\':
		return r.readChar()
	case ':':
		return r.readKeyword()
	case '#':
		return r.readDispatch(depth)
	default:
		return r.readAtom()
	}
}

// skipIgnored advances past whitespace, commas, comments and #_ discards.
func (r *reader) skipIgnored(depth int) error {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch {
		case isSpace(c):
			r.pos++
		case c == ';':
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
		case c == '#' && r.pos+1 < len(r.src) && r.src[r.pos+1] == '_':
			r.pos += 2
			if _, err := r.read(depth + 1); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (r *reader) readSeq(closer byte, depth int) ([]any, error) {
	start := r.pos - 1
	items := []any{}
	for {
		if err := r.skipIgnored(depth); err != nil {
			return nil, err
		}
		if r.pos >= len(r.src) {
			return nil, r.errorf(start, "unterminated collection, expected %q", closer)
		}
		if r.src[r.pos] == closer {
			r.pos++
			return items, nil
		}
		v, err := r.read(depth + 1)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (r *reader) readMap(depth int) (any, error) {
	start := r.pos
	r.pos++
	items, err := r.readSeq('}', depth)
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, r.errorf(start, "map literal must contain an even number of forms")
	}

	m := make(Map, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		key := items[i]
		if !hashable(key) {
			return nil, r.errorf(start, "map key %s is not a scalar", Format(key))
		}
		if _, dup := m[key]; dup {
			return nil, r.errorf(start, "duplicate map key %s", Format(key))
		}
		m[key] = items[i+1]
	}
	return m, nil
}

func (r *reader) readDispatch(depth int) (any, error) {
	start := r.pos
	r.pos++
	if r.pos >= len(r.src) {
		return nil, r.errorf(start, "unexpected end of input after '#'")
	}

	if r.src[r.pos] == '{' {
		r.pos++
		items, err := r.readSeq('}', depth)
		if err != nil {
			return nil, err
		}
		return Set(items), nil
	}

	tok := r.token()
	if tok == "" || !isSymbolStart(tok[0]) {
		return nil, r.errorf(start, "invalid dispatch character after '#'")
	}
	v, err := r.read(depth + 1)
	if err != nil {
		return nil, err
	}
	return Tagged{Tag: Symbol(tok), Value: v}, nil
}

func (r *reader) readString() (any, error) {
	start := r.pos
	r.pos++
	var b strings.Builder
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch c {
		case '"':
			r.pos++
			return b.String(), nil
		case '\\':
			r.pos++
			if r.pos >= len(r.src) {
				return nil, r.errorf(start, "unterminated string")
			}
			esc := r.src[r.pos]
			r.pos++
			switch esc {
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'n':
				b.WriteByte('\n')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case '"', '\\':
				b.WriteByte(esc)
			case 'u':
				cp, err := r.hex4(start)
				if err != nil {
					return nil, err
				}
				b.WriteRune(cp)
			default:
				return nil, r.errorf(r.pos-2, "unsupported escape \\%c", esc)
			}
		default:
			b.WriteByte(c)
			r.pos++
		}
	}
	return nil, r.errorf(start, "unterminated string")
}

func (r *reader) hex4(start int) (rune, error) {
	if r.pos+4 > len(r.src) {
		return 0, r.errorf(start, "truncated \\u escape")
	}
	cp, err := strconv.ParseUint(r.src[r.pos:r.pos+4], 16, 32)
	if err != nil {
		return 0, r.errorf(r.pos, "invalid \\u escape %q", r.src[r.pos:r.pos+4])
	}
	r.pos += 4
	return rune(cp), nil
}

var namedChars = map[string]rune{
	"newline": '\n',
	"space":   ' ',
	"tab":     '\t',
	"return":  '\r',
}

func (r *reader) readChar() (any, error) {
	start := r.pos
	r.pos++
	if r.pos >= len(r.src) {
		return nil, r.errorf(start, "unexpected end of input in character literal")
	}

	// A single character is always taken literally, even a delimiter like \( or \,.
	ch, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size
	rest := r.token()
	if rest == "" {
		return Char(ch), nil
	}

	name := string(ch) + rest
	if c, ok := namedChars[name]; ok {
		return Char(c), nil
	}
	if ch == 'u' && len(rest) == 4 {
		cp, err := strconv.ParseUint(rest, 16, 32)
		if err == nil {
			return Char(rune(cp)), nil
		}
	}
	return nil, r.errorf(start, "unknown character literal \\%s", name)
}

func (r *reader) readKeyword() (any, error) {
	start := r.pos
	r.pos++
	tok := r.token()
	if tok == "" || tok[0] == ':' || tok[0] == '#' {
		return nil, r.errorf(start, "invalid keyword")
	}
	return Keyword(tok), nil
}

func (r *reader) readAtom() (any, error) {
	start := r.pos
	tok := r.token()
	if tok == "" {
		ch, _ := utf8.DecodeRuneInString(r.src[r.pos:])
		return nil, r.errorf(start, "unexpected character %q", ch)
	}

	switch tok {
	case "nil":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if isNumberStart(tok) {
		v, err := parseNumber(tok)
		if err != nil {
			return nil, r.errorf(start, "invalid number %q", tok)
		}
		return v, nil
	}
	if !isSymbolStart(tok[0]) {
		return nil, r.errorf(start, "invalid symbol %q", tok)
	}
	return Symbol(tok), nil
}

// token consumes characters up to the next delimiter.
func (r *reader) token() string {
	start := r.pos
	for r.pos < len(r.src) && !isDelimiter(r.src[r.pos]) {
		r.pos++
	}
	return r.src[start:r.pos]
}

func parseNumber(tok string) (any, error) {
	switch {
	case strings.HasSuffix(tok, "N"):
		return strconv.ParseInt(strings.TrimSuffix(tok, "N"), 10, 64)
	case strings.HasSuffix(tok, "M"):
		return strconv.ParseFloat(strings.TrimSuffix(tok, "M"), 64)
	case strings.ContainsAny(tok, ".eE"):
		return strconv.ParseFloat(tok, 64)
	default:
		return strconv.ParseInt(tok, 10, 64)
	}
}

func isNumberStart(tok string) bool {
	if isDigit(tok[0]) {
		return true
	}
	return (tok[0] == '+' || tok[0] == '-') && len(tok) > 1 && isDigit(tok[1])
}

func isSymbolStart(c byte) bool {
	if isDigit(c) {
		return false
	}
	switch c {
	case ':', '#', '\'', '`', '~', '@', '^':
		return false
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '(', ')', '[', ']', '{', '}', '"', ';', '\\':
		return true
	}
	return false
}

// hashable reports whether v can be used as a Map key.
func hashable(v any) bool {
	switch x := v.(type) {
	case List, Vector, Set, Map:
		return false
	case Tagged:
		return hashable(x.Value)
	}
	return true
}

func (r *reader) errorf(offset int, format string, args ...any) error {
	line, col := position(r.src, offset)
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// position converts a byte offset into a 1-based line and rune column.
func position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}
