package main

import (
	"fmt"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/edn"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// runInspect prints the header and body of a hybrid document.
// The header is printed as YAML front matter unless --edn is set.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: inspect takes exactly one file, got %d", ErrUsage, len(positional))
	}
	path := positional[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return &md2site.BuildError{Path: path, Err: fmt.Errorf("%w: %w", md2site.ErrFileSystem, err)}
	}

	header, body, err := md2site.PreprocessHybrid(string(data))
	if err != nil {
		return &md2site.BuildError{Path: path, Err: err}
	}

	if flags.edn {
		fmt.Fprintln(env.Stdout, md2site.FormatHeader(header))
	} else {
		out, err := yamlutil.Marshal(headerToYAML(header))
		if err != nil {
			return fmt.Errorf("printing header: %w", err)
		}
		fmt.Fprintf(env.Stdout, "---\n%s---\n", out)
	}

	if body != "" {
		fmt.Fprintln(env.Stdout, body)
	}
	return nil
}

// headerToYAML converts EDN values to plain values the YAML encoder prints
// readably. Keyword map keys lose their colon, keyword values keep it.
func headerToYAML(v any) any {
	switch x := v.(type) {
	case edn.Map:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[yamlKey(k)] = headerToYAML(val)
		}
		return m
	case edn.Vector:
		return seqToYAML(x)
	case edn.List:
		return seqToYAML(x)
	case edn.Set:
		return seqToYAML(x)
	case edn.Keyword:
		return ":" + string(x)
	case edn.Symbol:
		return string(x)
	case edn.Char:
		return string(rune(x))
	case edn.Tagged:
		return edn.Format(x)
	default:
		return x
	}
}

func seqToYAML(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = headerToYAML(item)
	}
	return out
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case edn.Keyword:
		return string(x)
	case string:
		return x
	default:
		return edn.Format(x)
	}
}
