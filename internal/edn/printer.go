package edn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format prints v in the notation ReadValue accepts.
// Map entries are sorted by their printed key so output is stable.
func Format(v any) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case int:
		b.WriteString(strconv.Itoa(x))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		b.WriteString(s)
	case string:
		writeString(b, x)
	case Keyword:
		b.WriteByte(':')
		b.WriteString(string(x))
	case Symbol:
		b.WriteString(string(x))
	case Char:
		writeChar(b, x)
	case List:
		writeSeq(b, "(", ")", x)
	case Vector:
		writeSeq(b, "[", "]", x)
	case Set:
		writeSeq(b, "#{", "}", x)
	case Map:
		writeMap(b, x)
	case Tagged:
		b.WriteByte('#')
		b.WriteString(string(x.Tag))
		b.WriteByte(' ')
		write(b, x.Value)
	default:
		writeString(b, fmt.Sprint(x))
	}
}

func writeSeq(b *strings.Builder, open, closer string, items []any) {
	b.WriteString(open)
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, item)
	}
	b.WriteString(closer)
}

func writeMap(b *strings.Builder, m Map) {
	type entry struct {
		key   string
		value any
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{key: Format(k), value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteByte(' ')
		write(b, e.value)
	}
	b.WriteByte('}')
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func writeChar(b *strings.Builder, c Char) {
	for name, r := range namedChars {
		if rune(c) == r {
			b.WriteByte('\\')
			b.WriteString(name)
			return
		}
	}
	if c < 0x20 || c == 0x7f {
		fmt.Fprintf(b, `\u%04x`, rune(c))
		return
	}
	b.WriteByte('\\')
	b.WriteRune(rune(c))
}
