package md2site

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// BuildFunc receives the outcome of every build run by Watch.
type BuildFunc func(report *BuildReport, err error)

// Watch builds cfg once, then rebuilds whenever a file in cfg.MarkupDir or
// the template file changes. Bursts of events closer than the debounce
// interval trigger a single rebuild. Build failures go to onBuild and do
// not stop watching.
//
// Watch returns nil when ctx is done, or an error if watching cannot start.
func (b *Builder) Watch(ctx context.Context, cfg BuildConfig, onBuild BuildFunc) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: creating watcher: %w", ErrFileSystem, err)
	}
	defer func() { _ = w.Close() }()

	markupDir := filepath.Clean(cfg.MarkupDir)
	if err := w.Add(markupDir); err != nil {
		return newBuildError(cfg.MarkupDir, ErrFileSystem, err)
	}

	// The template directory is watched rather than the file, so editors
	// that save through rename keep triggering rebuilds.
	templatePath := ""
	if cfg.Template != "" && (!assets.IsBuiltinName(cfg.Template) || fileutil.FileExists(cfg.Template)) {
		templatePath = filepath.Clean(cfg.Template)
		if dir := filepath.Dir(templatePath); dir != markupDir {
			if err := w.Add(dir); err != nil {
				return newBuildError(cfg.Template, ErrFileSystem, err)
			}
		}
	}

	relevant := func(ev fsnotify.Event) bool {
		if ev.Op == fsnotify.Chmod {
			return false
		}
		name := filepath.Clean(ev.Name)
		return filepath.Dir(name) == markupDir || name == templatePath
	}

	b.log.WithField("markup", cfg.MarkupDir).Info("watching for changes")
	onBuild(b.Build(ctx, cfg))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			b.log.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("change detected")
			if timer == nil {
				timer = time.NewTimer(b.debounce)
			} else {
				timer.Reset(b.debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.log.WithError(err).Warn("watcher error")

		case <-fire:
			fire = nil
			report, err := b.Build(ctx, cfg)
			if ctx.Err() != nil {
				return nil
			}
			onBuild(report, err)
		}
	}
}
