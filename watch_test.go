package md2site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type buildResult struct {
	report *BuildReport
	err    error
}

// startWatch runs Watch in the background and returns its build results.
func startWatch(t *testing.T, cfg BuildConfig) (<-chan buildResult, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan buildResult, 16)
	done := make(chan error, 1)

	b := NewBuilder(WithDebounce(20 * time.Millisecond))
	go func() {
		done <- b.Watch(ctx, cfg, func(r *BuildReport, err error) {
			results <- buildResult{report: r, err: err}
		})
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("Watch did not return after cancel")
		}
	})
	return results, done
}

func nextBuild(t *testing.T, results <-chan buildResult) buildResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for build")
		return buildResult{}
	}
}

// ---------------------------------------------------------------------------
// TestWatch - Rebuild on change
// ---------------------------------------------------------------------------

func TestWatch_RebuildsOnNewFile(t *testing.T) {
	t.Parallel()

	cfg := newSite(t, map[string]string{"index.md": "hello"})
	results, _ := startWatch(t, cfg)

	first := nextBuild(t, results)
	if first.err != nil || len(first.report.Pages) != 1 {
		t.Fatalf("initial build = %+v, %v", first.report, first.err)
	}

	writeFile(t, filepath.Join(cfg.MarkupDir, "about.md"), "about")

	second := nextBuild(t, results)
	if second.err != nil {
		t.Fatalf("rebuild error = %v", second.err)
	}
	if len(second.report.Pages) != 2 {
		t.Errorf("rebuild pages = %v, want 2", second.report.Pages)
	}
	if _, err := os.Stat(filepath.Join(cfg.SiteDir, "about.html")); err != nil {
		t.Errorf("about.html not generated: %v", err)
	}
}

func TestWatch_RebuildsOnTemplateChange(t *testing.T) {
	t.Parallel()

	cfg := newSite(t, map[string]string{"index.md": "hello"})
	cfg.Template = filepath.Join(t.TempDir(), "layout.html")
	writeFile(t, cfg.Template, "v1 <div id='_body'></div>")
	results, _ := startWatch(t, cfg)

	if r := nextBuild(t, results); r.err != nil {
		t.Fatalf("initial build error = %v", r.err)
	}

	writeFile(t, cfg.Template, "v2 <div id='_body'></div>")

	if r := nextBuild(t, results); r.err != nil {
		t.Fatalf("rebuild error = %v", r.err)
	}
	if got := readFile(t, filepath.Join(cfg.SiteDir, "index.html")); !strings.HasPrefix(got, "v2") {
		t.Errorf("index.html = %q, want rebuilt with v2 template", got)
	}
}

func TestWatch_ReportsFailuresAndKeepsWatching(t *testing.T) {
	t.Parallel()

	cfg := newSite(t, map[string]string{"index.md": "hello"})
	cfg.Template = filepath.Join(t.TempDir(), "layout.html")
	writeFile(t, cfg.Template, "no marker")
	results, _ := startWatch(t, cfg)

	if r := nextBuild(t, results); !errors.Is(r.err, ErrTemplate) {
		t.Fatalf("initial build error = %v, want ErrTemplate", r.err)
	}

	writeFile(t, cfg.Template, "<div id='_body'></div>")

	if r := nextBuild(t, results); r.err != nil {
		t.Fatalf("rebuild after fix error = %v", r.err)
	}
}

func TestWatch_MissingMarkupDir(t *testing.T) {
	t.Parallel()

	cfg := newSite(t, nil)
	cfg.MarkupDir = filepath.Join(cfg.MarkupDir, "missing")

	err := NewBuilder().Watch(context.Background(), cfg, func(*BuildReport, error) {
		t.Error("onBuild should not run")
	})
	if !errors.Is(err, ErrFileSystem) {
		t.Errorf("Watch() error = %v, want ErrFileSystem", err)
	}
}

func TestWatch_InvalidConfig(t *testing.T) {
	t.Parallel()

	err := NewBuilder().Watch(context.Background(), BuildConfig{}, func(*BuildReport, error) {})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Watch() error = %v, want ErrInvalidConfig", err)
	}
}
