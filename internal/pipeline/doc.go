// Package pipeline implements the per-page conversion stages of a site build.
//
// Each source file flows through the same stages:
//   - Markup preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Injection of the fragment into the page template's body marker
//
// Reading sources and writing pages is left to the caller, which keeps every
// stage a pure function of its input.
package pipeline
