package md2site_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site"
)

// Example builds a one-page site with the default template.
func Example() {
	root, err := os.MkdirTemp("", "md2site-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(root)

	markup := filepath.Join(root, "content")
	site := filepath.Join(root, "site")
	_ = os.Mkdir(markup, 0o755)
	_ = os.WriteFile(filepath.Join(markup, "index.md"), []byte("hello"), 0o600)

	err = md2site.RunBuild(context.Background(), md2site.BuildConfig{
		MarkupDir: markup,
		SiteDir:   site,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, _ := os.ReadFile(filepath.Join(site, "index.html"))
	fmt.Print(string(out))
	// Output:
	// <DIV ID='_body'><p>hello</p>
	// </DIV>
}

// ExampleBuilder_Build shows the report returned by a build.
func ExampleBuilder_Build() {
	root, err := os.MkdirTemp("", "md2site-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(root)

	markup := filepath.Join(root, "content")
	_ = os.Mkdir(markup, 0o755)
	_ = os.WriteFile(filepath.Join(markup, "a.md"), []byte("# A"), 0o600)
	_ = os.WriteFile(filepath.Join(markup, "b.md"), []byte("# B"), 0o600)

	report, err := md2site.NewBuilder().Build(context.Background(), md2site.BuildConfig{
		MarkupDir: markup,
		SiteDir:   filepath.Join(root, "site"),
		Template:  "page",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range report.Pages {
		fmt.Println(filepath.Base(p.Source), "->", filepath.Base(p.Target))
	}
	// Output:
	// a.md -> a.html
	// b.md -> b.html
}

// ExampleBuildError shows how to find the file a build failed on.
func ExampleBuildError() {
	err := md2site.RunBuild(context.Background(), md2site.BuildConfig{
		MarkupDir: "/nonexistent/content",
		SiteDir:   "/nonexistent/site",
	})

	var be *md2site.BuildError
	if errors.As(err, &be) {
		fmt.Println("path:", be.Path)
	}
	fmt.Println("file system error:", errors.Is(err, md2site.ErrFileSystem))
	// Output:
	// path: /nonexistent/content
	// file system error: true
}

// ExamplePreprocessHybrid splits a document with an EDN header.
func ExamplePreprocessHybrid() {
	header, body, err := md2site.PreprocessHybrid("{:title \"Home\"}\n<h1>Welcome</h1>\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	title, _ := header.Get("title")
	fmt.Println(title)
	fmt.Println(body)
	// Output:
	// Home
	// <h1>Welcome</h1>
}
