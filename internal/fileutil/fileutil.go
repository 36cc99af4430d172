// Package fileutil provides file and path utility functions.
//
// The path helpers operate on plain strings with '/' as the only separator,
// so the build pipeline can compute every target path without touching
// the filesystem.
package fileutil

import (
	"os"
	"strings"
)

// SplitExt splits path into a stem and an extension on '.' characters.
//
// Every dot in the whole path counts, not only those of the final segment:
//   - "x"                 -> ("x", "")
//   - "x.y"               -> ("x", "y")
//   - "/x/y/z.f"          -> ("/x/y/z", "f")
//   - "/x/y.z/p.q/r.s.t"  -> ("/x/y.z/p.q/r.s", "t")
func SplitExt(path string) (stem, ext string) {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		return path, ""
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], "."), parts[last]
}

// Extension returns the extension of the final path segment.
// ok is false when that segment has no '.', which is distinct from an
// empty extension ("x." yields "", true).
func Extension(path string) (ext string, ok bool) {
	segments := strings.Split(path, "/")
	name := segments[len(segments)-1]
	if !strings.Contains(name, ".") {
		return "", false
	}
	_, ext = SplitExt(name)
	return ext, true
}

// Join joins segments with a single '/', stripping leading and trailing
// slashes from each one. Segments left empty are dropped. The result is
// absolute only if the first segment starts with '/'.
func Join(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	cleaned := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Trim(s, "/"); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	joined := strings.Join(cleaned, "/")
	if strings.HasPrefix(segments[0], "/") {
		return "/" + joined
	}
	return joined
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2site/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
