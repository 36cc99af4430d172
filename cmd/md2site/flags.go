package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags override the configuration file and environment.
type siteFlags struct {
	markupDir string
	siteDir   string
	template  string
}

// buildFlags holds flags for build, clean and watch.
type buildFlags struct {
	common commonFlags
	site   siteFlags
}

// inspectFlags holds flags for inspect.
type inspectFlags struct {
	edn bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped entries and runtime details")
}

// addSiteFlags adds directory and template flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.markupDir, "markup", "m", "", "markup source directory")
	fs.StringVarP(&f.siteDir, "site", "s", "", "site output directory")
	fs.StringVarP(&f.template, "template", "t", "", "template path or built-in name")
}

// parseBuildFlags parses flags for a site command and returns positional args.
// Site commands take no positional arguments.
func parseBuildFlags(cmd string, args []string, usage func(io.Writer), stderr io.Writer) (*buildFlags, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd, fs.Args())
	}
	return f, nil
}

// parseInspectFlags parses inspect flags and returns positional args.
func parseInspectFlags(args []string, stderr io.Writer) (*inspectFlags, []string, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &inspectFlags{}

	fs.BoolVar(&f.edn, "edn", false, "print the header as EDN instead of YAML")

	fs.Usage = func() { printInspectUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return f, fs.Args(), nil
}
