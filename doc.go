// Package md2html converts a constrained Markdown dialect to HTML.
//
// # Quick Start
//
// Create a converter and render a document:
//
//	conv := md2html.New()
//	html, err := conv.Render(md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(html), 0644)
//
// Use Convert instead of Render to get the body fragment plus parsed front
// matter without the surrounding document shell. ConvertFile handles the
// read-convert-write cycle for a file pair.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization (CRLF/CR to LF)
//  2. Front-matter extraction (leading "---"-delimited key: value block)
//  3. Block segmentation (headers, paragraphs, nested lists, fenced code)
//  4. Inline formatting (bold, italic, image, link, inline code, in order)
//  5. Assembly (byline, per-line indentation, template substitution)
//
// # Dialect
//
// The dialect is intentionally small and is not CommonMark. Inline rules are
// applied as an ordered sequence of single-pass substitutions, so nested or
// overlapping emphasis is unsupported. Lists nest by leading-whitespace
// count; switching marker style at the same indent continues the open list.
// Fenced code blocks are rendered verbatim, and an unterminated fence
// silently discards its buffered content. User content is not HTML-escaped.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2html.New(
//	    md2html.WithTemplate(tpl),
//	    md2html.WithHighlighting("monokai"),
//	)
//
// Templates are plain text with literal {{title}}, {{content}} and
// {{<metadataKey>}} placeholders. A template without {{content}} is a
// configuration error (ErrInvalidTemplate). Without WithTemplate the
// embedded default shell is used.
package md2html
