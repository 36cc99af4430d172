package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Convert every markup file into an HTML page")
	fmt.Fprintln(w, "  watch      Build, then rebuild on every change")
	fmt.Fprintln(w, "  clean      Remove the site directory")
	fmt.Fprintln(w, "  inspect    Show the header and body of a hybrid document")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by build, watch and clean.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -m, --markup <dir>        Markup source directory")
	fmt.Fprintln(w, "  -s, --site <dir>          Site output directory")
	fmt.Fprintln(w, "  -t, --template <ref>      Template path or built-in name (default, page)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: md2site)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show skipped entries and runtime details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_MARKUP_DIR, MD2SITE_SITE_DIR, MD2SITE_TEMPLATE")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every file of the markup directory into <stem>.html in the")
	fmt.Fprintln(w, "site directory. Subdirectories are skipped. The build stops at the")
	fmt.Fprintln(w, "first failure and names the file it failed on.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site watch [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then rebuild whenever a markup file or the template")
	fmt.Fprintln(w, "changes. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site clean [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove the site directory and everything in it.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site inspect <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a document made of an EDN map followed by text, then print the")
	fmt.Fprintln(w, "map as YAML front matter and the text after it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --edn                 Print the header as EDN")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "clean":
		printCleanUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
