// Package md2site builds a static HTML site from a directory of Markdown files.
//
// # Quick Start
//
// Build every file of a markup directory into a site directory:
//
//	err := md2site.RunBuild(ctx, md2site.BuildConfig{
//	    MarkupDir: "content",
//	    SiteDir:   "site",
//	})
//
// Each source file produces one page named after its stem: "index.md" becomes
// "site/index.html". Subdirectories of the markup directory are skipped.
//
// # Build Pipeline
//
// For every source file, in directory order:
//
//  1. Markdown preprocessing (line endings, blank lines, ==highlight== syntax)
//  2. Markdown to HTML conversion via Goldmark (GFM, footnotes, syntax highlighting)
//  3. Injection of the HTML into the page template at its body marker
//  4. Write of <stem>.html into the site directory
//
// # Templates
//
// A template is any text holding exactly one empty body marker:
//
//	<div id="_body"></div>
//
// Tag, attribute and id compare case-insensitively. Without a template the
// bare marker "<DIV ID='_body'></DIV>" is used. BuildConfig.Template takes a
// file path or, when no such file exists, the name of a built-in template
// ("default", "page").
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b := md2site.NewBuilder(
//	    md2site.WithLogger(logger),
//	    md2site.WithConverter(myConverter),
//	)
//	report, err := b.Build(ctx, cfg)
//
// # Hybrid Documents
//
// PreprocessHybrid splits a document made of one EDN map followed by free text:
//
//	header, body, err := md2site.PreprocessHybrid("{:title \"Home\"}\n<HEAD></HEAD>")
//
// # Error Handling
//
// Builds stop at the first failure. Per-file failures are *BuildError values
// carrying the source path, and every error matches one kind with errors.Is:
//
//	var be *md2site.BuildError
//	if errors.As(err, &be) {
//	    log.Printf("failed on %s", be.Path)
//	}
//	if errors.Is(err, md2site.ErrTemplate) {
//	    // fix the template
//	}
package md2site
