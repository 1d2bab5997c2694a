package md2html

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
)

// Converter runs the markdown-to-HTML pipeline. A Converter carries only
// configuration; every conversion call builds its mutable state (the list
// nesting stack and accumulation buffers) fresh, so one instance can be
// reused across documents without cross-call leakage.
type Converter struct {
	cfg converterConfig
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTemplate, WithHighlighting).
func New(opts ...Option) *Converter {
	c := &Converter{cfg: converterConfig{now: time.Now}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs front-matter extraction, block segmentation, and body
// assembly, returning the body fragment and parsed metadata without the
// surrounding document shell. Malformed structure degrades via documented
// heuristics rather than failing, so Convert cannot error.
func (c *Converter) Convert(input Input) *Result {
	content := NormalizeLineEndings(input.Markdown)
	meta, body := ExtractFrontMatter(content)
	blocks := c.segment(body)

	title := input.Title
	if title == "" {
		if t, ok := meta.Get("title"); ok {
			title = t
		}
	}

	return &Result{
		HTML:     c.assembleBody(meta, blocks),
		Metadata: meta,
		Title:    title,
	}
}

// Render runs Convert and substitutes the result into the configured
// template, or the embedded default shell when none was supplied.
func (c *Converter) Render(input Input) (string, error) {
	res := c.Convert(input)
	return c.renderDocument(res.Title, res)
}

// ConvertFile reads inputPath, converts it, and writes the rendered
// document to outputPath. When neither Input.Title nor front matter
// provides a title, the input file's base name (extension stripped) is
// used. The output file is written only after full successful rendering;
// no partial file is left behind on failure.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided by design
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingInput, err)
	}

	res := c.Convert(Input{Markdown: string(raw)})
	title := res.Title
	if title == "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	html, err := c.renderDocument(title, res)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// renderDocument substitutes title, metadata, and body content into the
// configured template or the embedded default shell.
func (c *Converter) renderDocument(title string, res *Result) (string, error) {
	template := c.cfg.template
	if template == "" {
		template = assets.DefaultTemplate()
	}
	return applyTemplate(template, title, res.HTML, res.Metadata)
}
