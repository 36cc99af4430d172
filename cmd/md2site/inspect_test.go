package main

import (
	"reflect"
	"testing"

	"github.com/alnah/go-md2site/internal/edn"
)

func TestHeaderToYAML(t *testing.T) {
	t.Parallel()

	header := edn.Map{
		edn.Keyword("title"): "Home",
		"plain":              int64(2),
		int64(7):             true,
		edn.Keyword("tags"):  edn.Vector{edn.Keyword("a"), edn.Symbol("b")},
		edn.Keyword("set"):   edn.Set{edn.Char('x')},
		edn.Keyword("when"):  edn.Tagged{Tag: "inst", Value: "2024-01-02"},
		edn.Keyword("nested"): edn.Map{
			edn.Keyword("list"): edn.List{1.5, nil},
		},
	}

	want := map[string]any{
		"title":  "Home",
		"plain":  int64(2),
		"7":      true,
		"tags":   []any{":a", "b"},
		"set":    []any{"x"},
		"when":   `#inst "2024-01-02"`,
		"nested": map[string]any{"list": []any{1.5, nil}},
	}

	if got := headerToYAML(header); !reflect.DeepEqual(got, want) {
		t.Errorf("headerToYAML() =\n%#v\nwant\n%#v", got, want)
	}
}
