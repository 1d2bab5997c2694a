package md2html

import "time"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content
	Title    string // Explicit title override (optional; "" = front matter or caller fallback)
}

// Result holds the outcome of a body conversion.
type Result struct {
	HTML     string    // Body fragment: byline plus indented blocks, no document shell
	Metadata *Metadata // Parsed front matter (empty mapping when absent)
	Title    string    // Input.Title, else front matter "title", else ""
}

// Element class attributes. The original emitted Tailwind utility classes
// built inline at each call site; here they live in one static table.
const (
	classStrong    = "font-bold"
	classEm        = "italic"
	classLink      = "underline"
	classCode      = "bg-slate-300"
	classParagraph = "mb-5 text-justify"
	classOrdered   = "list-decimal list-inside"
	classUnordered = "list-disc list-inside"
	classByline    = "text-xs text-slate-500"
)

// headerClasses maps header level (1-6) to its class attribute.
// Only the text size varies; levels 3-6 share the smallest size.
var headerClasses = [7]string{
	1: "text-6xl text-red-900 mb-5 font-black uppercase",
	2: "text-4xl text-red-900 mb-5 font-black uppercase",
	3: "text-2xl text-red-900 mb-5 font-black uppercase",
	4: "text-2xl text-red-900 mb-5 font-black uppercase",
	5: "text-2xl text-red-900 mb-5 font-black uppercase",
	6: "text-2xl text-red-900 mb-5 font-black uppercase",
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	template       string           // template content ("" = embedded default shell)
	highlightStyle string           // chroma style name ("" = verbatim code blocks)
	now            func() time.Time // injectable clock for byline synthesis
}

// WithTemplate sets the template content used by Render and ConvertFile.
// The template must contain a literal {{content}} placeholder; violation
// surfaces as ErrInvalidTemplate at render time.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.template = content
	}
}

// WithHighlighting enables chroma syntax highlighting of fenced code blocks
// using the named style. Unknown style names fall back to chroma's default.
// Without this option code blocks are rendered verbatim.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}
