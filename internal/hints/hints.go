// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2site/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingConfig returns a hint when neither flags, environment nor a
// config file provided the required directories.
func ForMissingConfig() string {
	return format("pass --markup and --site, set MD2SITE_MARKUP_DIR and MD2SITE_SITE_DIR, or use --config")
}

// ForMarkupDir returns hints for an unreadable markup directory.
func ForMarkupDir(dir string) string {
	return format("check that " + dir + " exists and is a readable directory")
}

// ForSiteDir returns hints for site directory creation or write errors.
func ForSiteDir() string {
	return format("check parent directory exists and is writable")
}

// ForTemplate returns hints for templates without a usable body marker.
func ForTemplate() string {
	return format(`the template needs exactly one empty <div id="_body"></div>`)
}

// ForTemplateNotFound returns hints for unknown template references.
func ForTemplateNotFound(builtins []string) string {
	if len(builtins) == 0 {
		return format("use a path such as ./layout.html")
	}
	return formatHints([]string{
		"built-in: " + strings.Join(builtins, ", "),
		"use a path such as ./layout.html for files",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
