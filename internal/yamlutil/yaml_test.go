package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

type siteConfig struct {
	MarkupDir string `yaml:"markupDir"`
	SiteDir   string `yaml:"siteDir"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		wantMsg string
		check   func(t *testing.T, v any)
	}{
		{
			name: "known fields",
			data: []byte("markupDir: content\nsiteDir: public"),
			dest: &siteConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*siteConfig)
				if cfg.MarkupDir != "content" {
					t.Errorf("MarkupDir = %q, want %q", cfg.MarkupDir, "content")
				}
				if cfg.SiteDir != "public" {
					t.Errorf("SiteDir = %q, want %q", cfg.SiteDir, "public")
				}
			},
		},
		{
			name: "unicode values",
			data: []byte("markupDir: 文書"),
			dest: &siteConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*siteConfig).MarkupDir; got != "文書" {
					t.Errorf("MarkupDir = %q, want %q", got, "文書")
				}
			},
		},
		{
			name:    "unknown field",
			data:    []byte("markupDir: content\nbaseURL: /"),
			dest:    &siteConfig{},
			wantMsg: "yamlutil:",
		},
		{
			name:    "duplicate key",
			data:    []byte("siteDir: a\nsiteDir: b"),
			dest:    &siteConfig{},
			wantMsg: "yamlutil:",
		},
		{
			name:    "invalid syntax",
			data:    []byte("markupDir: [unclosed"),
			dest:    &siteConfig{},
			wantMsg: "yamlutil:",
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &siteConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil target",
			data:    []byte("siteDir: public"),
			dest:    nil,
			wantErr: yamlutil.ErrNilTarget,
		},
		{
			name:    "oversized input",
			data:    []byte("siteDir: " + strings.Repeat("a", yamlutil.MaxInputSize)),
			dest:    &siteConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.wantMsg != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Block-style output
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(map[string]any{
		"title": "Home",
		"tags":  []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{"title: Home", "tags:", "- a", "- b"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got:\n%s", want, s)
		}
	}
}
