package main

import (
	"context"
	"fmt"
	"io"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// siteCommand holds what build, clean and watch share after flag parsing.
type siteCommand struct {
	flags   *buildFlags
	cfg     md2site.BuildConfig
	builder *md2site.Builder
}

// newSiteCommand parses flags, resolves the config and creates a builder
// logging to stderr.
func newSiteCommand(cmd string, args []string, env *Environment, usage func(io.Writer), opts ...md2site.Option) (*siteCommand, error) {
	flags, err := parseBuildFlags(cmd, args, usage, env.Stderr)
	if err != nil {
		return nil, err
	}

	cfg, err := resolveSiteConfig(flags)
	if err != nil {
		return nil, err
	}

	log := newLogger(env.Stderr, flags.common)
	opts = append([]md2site.Option{md2site.WithLogger(log)}, opts...)

	return &siteCommand{
		flags:   flags,
		cfg:     cfg,
		builder: md2site.NewBuilder(opts...),
	}, nil
}

// runBuild builds the site once.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	sc, err := newSiteCommand("build", args, env, printBuildUsage)
	if err != nil {
		return err
	}

	report, err := sc.builder.Build(ctx, sc.cfg)
	if err != nil {
		return withHint(err, buildHint(err, sc.cfg))
	}

	if !sc.flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d page(s) into %s in %s\n",
			len(report.Pages), sc.cfg.SiteDir, report.Duration.Round(time.Millisecond))
	}
	return nil
}

// runClean removes the site directory.
func runClean(ctx context.Context, args []string, env *Environment) error {
	sc, err := newSiteCommand("clean", args, env, printCleanUsage)
	if err != nil {
		return err
	}

	existed := fileutil.DirExists(sc.cfg.SiteDir)
	if err := sc.builder.Clean(ctx, sc.cfg); err != nil {
		return err
	}

	if sc.flags.common.quiet {
		return nil
	}
	if existed {
		fmt.Fprintf(env.Stdout, "Removed %s\n", sc.cfg.SiteDir)
	} else {
		fmt.Fprintf(env.Stdout, "Nothing to remove at %s\n", sc.cfg.SiteDir)
	}
	return nil
}

// runWatch builds the site, then rebuilds on every change until interrupted.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	sc, err := newSiteCommand("watch", args, env, printWatchUsage)
	if err != nil {
		return err
	}

	return sc.builder.Watch(ctx, sc.cfg, func(report *md2site.BuildReport, err error) {
		stamp := env.Now().Format("15:04:05")
		if err != nil {
			fmt.Fprintf(env.Stderr, "[%s] error: %v\n", stamp, withHint(err, buildHint(err, sc.cfg)))
			return
		}
		if !sc.flags.common.quiet {
			fmt.Fprintf(env.Stdout, "[%s] Built %d page(s)\n", stamp, len(report.Pages))
		}
	})
}
