// Package edn reads and prints a subset of extensible data notation.
//
// It exists to parse the metadata header at the top of hybrid documents:
// a single value read from the start of a text, after which the caller
// needs to know exactly where the value ended.
//
// Supported forms:
//   - nil, true, false
//   - integers (int64, optional N suffix) and floats (float64, optional M suffix)
//   - strings with \t \r \n \b \f \" \\ \uXXXX escapes
//   - characters (\a, \newline, \space, \tab, \return, \uXXXX)
//   - :keywords and symbols
//   - (lists), [vectors], {maps}, #{sets} and #tagged values
//
// Commas are whitespace, ';' starts a line comment and '#_' discards the
// following value.
package edn

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every *SyntaxError.
var ErrSyntax = errors.New("edn: syntax error")

// Keyword is a :keyword. The leading colon is not stored.
type Keyword string

// Symbol is a bare identifier such as foo or my.ns/bar.
type Symbol string

// Char is a \c character literal.
type Char rune

// List is a (list) value.
type List []any

// Vector is a [vector] value.
type Vector []any

// Set is a #{set} value. Element order follows the source.
type Set []any

// Map is a {map} value. Keys are scalars: composite keys are rejected by the reader.
type Map map[any]any

// Tagged is a #tag value, such as #inst "2024-01-01".
type Tagged struct {
	Tag   Symbol
	Value any
}

// Get looks a key up by name, trying the keyword form first and then the
// string form, so both {:title "x"} and {"title" "x"} answer Get("title").
func (m Map) Get(name string) (any, bool) {
	if v, ok := m[Keyword(name)]; ok {
		return v, true
	}
	v, ok := m[name]
	return v, ok
}

// SyntaxError reports where reading failed. Line and Column are 1-based.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("edn: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
