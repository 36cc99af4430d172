// Package assets resolves page templates for site builds.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader  - built-in templates compiled into the binary
//	    ├── FileLoader      - template files read from disk
//	    └── Resolver        - picks one of the two from the reference
//
// Every reference is first read as a file path. Only when no such file
// exists does a reference made of letters, digits, '-' and '_' name a
// built-in template ("default", "page"). "page.html" and "./page" are
// always file paths.
//
// # Built-in Templates
//
//	templates/
//	├── default.html   # the bare body marker
//	└── page.html      # minimal HTML5 page around the body marker
package assets
