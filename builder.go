package md2site

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkupPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter      = (*pipeline.GoldmarkConverter)(nil)
)

// File modes for generated output.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// PageExt is the extension of every generated page.
const PageExt = ".html"

// BuildConfig describes one build. It is not modified by the build.
type BuildConfig struct {
	MarkupDir string // Source directory, listed non-recursively
	SiteDir   string // Output directory, created if absent
	Template  string // Optional template path or built-in name
}

// Page is one generated file.
type Page struct {
	Source string
	Target string
	Bytes  int
}

// BuildReport summarizes a build.
type BuildReport struct {
	Pages    []Page
	Skipped  []string // Subdirectories of the markup directory
	Duration time.Duration
}

// Builder converts a markup directory into a site directory.
// A Builder holds no per-build state and can run any number of builds.
type Builder struct {
	fs           FileSystem
	log          logrus.FieldLogger
	preprocessor pipeline.MarkupPreprocessor
	converter    pipeline.HTMLConverter
	debounce     time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// defaultDebounce groups bursts of file events into one rebuild in Watch.
const defaultDebounce = 200 * time.Millisecond

// WithLogger sets the logger receiving per-page and summary entries.
// The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithFileSystem replaces the os-backed filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(b *Builder) {
		if fsys != nil {
			b.fs = fsys
		}
	}
}

// WithConverter replaces the Goldmark markup converter.
func WithConverter(c pipeline.HTMLConverter) Option {
	return func(b *Builder) {
		if c != nil {
			b.converter = c
		}
	}
}

// WithPreprocessor replaces the Markdown preprocessor.
func WithPreprocessor(p pipeline.MarkupPreprocessor) Option {
	return func(b *Builder) {
		if p != nil {
			b.preprocessor = p
		}
	}
}

// WithDebounce sets how long Watch waits for file events to settle.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithDebounce(d time.Duration) Option {
	if d <= 0 {
		panic("md2site: WithDebounce duration must be positive")
	}
	return func(b *Builder) {
		b.debounce = d
	}
}

// NewBuilder creates a Builder with default collaborators.
func NewBuilder(opts ...Option) *Builder {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Builder{
		fs:           osFS{},
		log:          discard,
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		converter:    pipeline.NewGoldmarkConverter(),
		debounce:     defaultDebounce,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RunBuild builds cfg with a default Builder and discards the report.
func RunBuild(ctx context.Context, cfg BuildConfig) error {
	_, err := NewBuilder().Build(ctx, cfg)
	return err
}

// Build lists cfg.MarkupDir, loads and validates the template, creates
// cfg.SiteDir, then converts every regular entry in directory order.
//
// The build stops at the first failure. Pages written before it stay on
// disk and are listed in the returned report, which is never nil.
func (b *Builder) Build(ctx context.Context, cfg BuildConfig) (*BuildReport, error) {
	start := time.Now()
	report := &BuildReport{}

	if err := cfg.validate(); err != nil {
		return report, err
	}

	entries, err := b.fs.ReadDir(cfg.MarkupDir)
	if err != nil {
		return report, newBuildError(cfg.MarkupDir, ErrFileSystem, err)
	}

	tmpl, err := b.loadTemplate(cfg.Template)
	if err != nil {
		return report, err
	}

	if err := b.fs.MkdirAll(cfg.SiteDir, dirPerm); err != nil {
		return report, newBuildError(cfg.SiteDir, ErrFileSystem, err)
	}

	written := make(map[string]string, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		source := fileutil.Join(cfg.MarkupDir, entry.Name())
		if entry.IsDir() {
			b.log.WithField("source", source).Debug("skipping subdirectory")
			report.Skipped = append(report.Skipped, source)
			continue
		}

		stem, _ := fileutil.SplitExt(entry.Name())
		target := fileutil.Join(cfg.SiteDir, stem+PageExt)
		if prev, ok := written[target]; ok {
			b.log.WithFields(logrus.Fields{"source": source, "previous": prev, "target": target}).
				Warn("page overwrites one generated earlier in this build")
		}

		page, err := b.buildPage(ctx, tmpl, source, target)
		if err != nil {
			return report, err
		}
		written[target] = source
		report.Pages = append(report.Pages, page)

		b.log.WithFields(logrus.Fields{
			"source": page.Source,
			"target": page.Target,
			"bytes":  page.Bytes,
		}).Info("page written")
	}

	report.Duration = time.Since(start)
	b.log.WithFields(logrus.Fields{
		"pages":    len(report.Pages),
		"duration": report.Duration,
	}).Info("build complete")

	return report, nil
}

// buildPage reads, converts, renders and writes a single source file.
func (b *Builder) buildPage(ctx context.Context, tmpl *pipeline.PageTemplate, source, target string) (Page, error) {
	raw, err := b.fs.ReadFile(source)
	if err != nil {
		return Page{}, newBuildError(source, ErrFileSystem, err)
	}

	markup := b.preprocessor.Preprocess(ctx, string(raw))
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	fragment, err := b.converter.ToHTML(ctx, markup)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Page{}, ctxErr
		}
		return Page{}, newBuildError(source, ErrMarkupConversion, err)
	}

	out := tmpl.Render(fragment)
	if err := b.fs.WriteFile(target, []byte(out), filePerm); err != nil {
		return Page{}, newBuildError(source, ErrFileSystem, fmt.Errorf("writing %s: %w", target, err))
	}

	return Page{Source: source, Target: target, Bytes: len(out)}, nil
}

// loadTemplate resolves ref and splits it at its body marker.
// An empty ref selects the default template.
func (b *Builder) loadTemplate(ref string) (*pipeline.PageTemplate, error) {
	var content string
	if ref != "" {
		var err error
		content, err = assets.NewResolver(b.fs.ReadFile).LoadTemplate(ref)
		if err != nil {
			return nil, newBuildError(ref, ErrTemplate, err)
		}
	}

	tmpl, err := pipeline.ParsePageTemplate(content)
	if err != nil {
		path := ref
		if path == "" {
			path = "default template"
		}
		return nil, newBuildError(path, ErrTemplate, err)
	}
	return tmpl, nil
}

// Clean deletes cfg.SiteDir and everything under it.
// A missing site directory is not an error.
func (b *Builder) Clean(ctx context.Context, cfg BuildConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := b.fs.RemoveAll(cfg.SiteDir); err != nil {
		return newBuildError(cfg.SiteDir, ErrFileSystem, err)
	}
	b.log.WithField("site", cfg.SiteDir).Info("site directory removed")
	return nil
}

// validate rejects configs that would make a build or clean destructive:
// the site directory may not be the markup directory or one of its ancestors.
func (c BuildConfig) validate() error {
	if c.MarkupDir == "" {
		return fmt.Errorf("%w: markup directory is empty", ErrInvalidConfig)
	}
	if c.SiteDir == "" {
		return fmt.Errorf("%w: site directory is empty", ErrInvalidConfig)
	}
	if filepath.Clean(c.MarkupDir) == filepath.Clean(c.SiteDir) {
		return fmt.Errorf("%w: site directory %q is the markup directory", ErrInvalidConfig, c.SiteDir)
	}
	if within(c.MarkupDir, c.SiteDir) {
		return fmt.Errorf("%w: site directory %q contains the markup directory %q",
			ErrInvalidConfig, c.SiteDir, c.MarkupDir)
	}
	return nil
}

// within reports whether path is dir or lies below it, comparing absolute paths.
func within(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = filepath.Clean(path)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = filepath.Clean(dir)
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
