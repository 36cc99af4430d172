package main

import (
	"errors"
	"fmt"
	"io/fs"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// defaultConfigName is loaded when neither --config nor MD2SITE_CONFIG is set
// and a matching file exists.
const defaultConfigName = "md2site"

// resolveSiteConfig combines the config file, environment and flags into a
// validated build config. Precedence: flags > environment > file.
func resolveSiteConfig(flags *buildFlags) (md2site.BuildConfig, error) {
	envCfg := loadEnvConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.Read(name)
		if err != nil {
			return md2site.BuildConfig{}, configLoadError(name, err)
		}
		cfg = loaded
	} else {
		loaded, err := config.Read(defaultConfigName)
		switch {
		case err == nil:
			cfg = loaded
		case !errors.Is(err, config.ErrConfigNotFound):
			return md2site.BuildConfig{}, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(&flags.site, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingField) {
			return md2site.BuildConfig{}, withHint(err, hints.ForMissingConfig())
		}
		return md2site.BuildConfig{}, err
	}

	return md2site.BuildConfig{
		MarkupDir: cfg.MarkupDir,
		SiteDir:   cfg.SiteDir,
		Template:  cfg.Template,
	}, nil
}

// mergeFlags overwrites config values with the flags that were set.
func mergeFlags(f *siteFlags, cfg *config.Config) {
	if f.markupDir != "" {
		cfg.MarkupDir = f.markupDir
	}
	if f.siteDir != "" {
		cfg.SiteDir = f.siteDir
	}
	if f.template != "" {
		cfg.Template = f.template
	}
}

func configLoadError(name string, err error) error {
	err = fmt.Errorf("loading config: %w", err)
	if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
		return withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return err
}

// buildHint picks the hint matching a build failure.
func buildHint(err error, cfg md2site.BuildConfig) string {
	switch {
	case errors.Is(err, pipeline.ErrMarkerNotFound), errors.Is(err, pipeline.ErrMarkerDuplicated):
		return hints.ForTemplate()
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidTemplateName):
		return hints.ForTemplateNotFound(assets.Builtins())
	case errors.Is(err, md2site.ErrFileSystem):
		var be *md2site.BuildError
		if errors.As(err, &be) && be.Path == cfg.MarkupDir && errors.Is(err, fs.ErrNotExist) {
			return hints.ForMarkupDir(cfg.MarkupDir)
		}
		if errors.As(err, &be) && be.Path == cfg.SiteDir {
			return hints.ForSiteDir()
		}
	}
	return ""
}
