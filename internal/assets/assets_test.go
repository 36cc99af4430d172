package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsBuiltinName - Reference classification
// ---------------------------------------------------------------------------

func TestIsBuiltinName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want bool
	}{
		{"page", true},
		{"default", true},
		{"my-page_2", true},
		{"", false},
		{"page.html", false},
		{"./page", false},
		{"layouts/page", false},
		{`layouts\page`, false},
		{"..", false},
		{"pagé", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := IsBuiltinName(tt.ref); got != tt.want {
				t.Errorf("IsBuiltinName(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestValidateTemplateName(t *testing.T) {
	t.Parallel()

	if err := ValidateTemplateName("page"); err != nil {
		t.Errorf("ValidateTemplateName(page) error = %v", err)
	}
	for _, name := range []string{"", "../etc/passwd", "page.html"} {
		if err := ValidateTemplateName(name); !errors.Is(err, ErrInvalidTemplateName) {
			t.Errorf("ValidateTemplateName(%q) error = %v, want ErrInvalidTemplateName", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in templates
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ref      string
		contains string
		wantErr  error
	}{
		{name: "default", ref: "default", contains: "<DIV ID='_body'></DIV>"},
		{name: "page", ref: "page", contains: `<div id="_body"></div>`},
		{name: "unknown", ref: "nope", wantErr: ErrTemplateNotFound},
		{name: "path rejected", ref: "../page", wantErr: ErrInvalidTemplateName},
	}

	loader := NewEmbeddedLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTemplate(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.ref, err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("LoadTemplate(%q) = %q, want containing %q", tt.ref, got, tt.contains)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	got := strings.Join(Builtins(), ",")
	if got != "default,page" {
		t.Errorf("Builtins() = %q, want %q", got, "default,page")
	}
}

// ---------------------------------------------------------------------------
// TestFileLoader - Disk templates
// ---------------------------------------------------------------------------

func TestFileLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "layout.html")
		if err := os.WriteFile(path, []byte("<div id='_body'></div>"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := NewFileLoader(nil).LoadTemplate(path)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "<div id='_body'></div>" {
			t.Errorf("LoadTemplate() = %q", got)
		}
	})

	t.Run("missing file keeps os error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFileLoader(nil).LoadTemplate(filepath.Join(t.TempDir(), "none.html"))
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		loader := NewFileLoader(func(string) ([]byte, error) { return nil, boom })
		_, err := loader.LoadTemplate("x.html")
		if !errors.Is(err, ErrTemplateRead) || !errors.Is(err, boom) {
			t.Errorf("error = %v, want ErrTemplateRead wrapping boom", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		loader := NewFileLoader(func(string) ([]byte, error) {
			return make([]byte, MaxTemplateSize+1), nil
		})
		_, err := loader.LoadTemplate("big.html")
		if !errors.Is(err, ErrTemplateTooLarge) {
			t.Errorf("error = %v, want ErrTemplateTooLarge", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolver - Name-or-path dispatch
// ---------------------------------------------------------------------------

func TestResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"layout":            "bare-named file",
		"page":              "file shadowing built-in",
		"layouts/page.html": "from disk",
	}
	r := NewResolver(func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return []byte(content), nil
	})

	tests := []struct {
		name         string
		ref          string
		want         string
		wantContains string
		wantErr      error
	}{
		{name: "path", ref: "layouts/page.html", want: "from disk"},
		{name: "bare-named file", ref: "layout", want: "bare-named file"},
		{name: "file shadows built-in", ref: "page", want: "file shadowing built-in"},
		{name: "built-in without file", ref: "default", wantContains: "_body"},
		{name: "unknown name", ref: "nosuch", wantErr: ErrTemplateNotFound},
		{name: "missing path keeps fs error", ref: "missing.html", wantErr: fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadTemplate(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", tt.ref, err)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("LoadTemplate(%q) = %q, want %q", tt.ref, got, tt.want)
			}
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("LoadTemplate(%q) = %q, want containing %q", tt.ref, got, tt.wantContains)
			}
		})
	}
}

func TestResolver_ReadErrorIsNotMaskedByBuiltin(t *testing.T) {
	t.Parallel()

	r := NewResolver(func(string) ([]byte, error) { return nil, fs.ErrPermission })

	_, err := r.LoadTemplate("page")
	if !errors.Is(err, ErrTemplateRead) || !errors.Is(err, fs.ErrPermission) {
		t.Errorf("LoadTemplate(page) error = %v, want ErrTemplateRead wrapping ErrPermission", err)
	}
}
