package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/dateutil"
)

// Block indentation applied when joining blocks into the document body.
const (
	blockIndent    = "  "
	listItemIndent = "    "
)

// Template placeholder tokens, resolved via literal text substitution.
const (
	titlePlaceholder   = "{{title}}"
	contentPlaceholder = "{{content}}"
)

// assembleBody joins blocks with per-line indentation and, when metadata
// is present, prepends the rendered byline. The byline itself is not
// indented; it is emitted as its own top-level section.
func (c *Converter) assembleBody(meta *Metadata, blocks []string) string {
	formatted := make([]string, 0, len(blocks)+1)
	if meta.Len() > 0 {
		formatted = append(formatted, c.renderByline(meta))
	}
	for _, block := range blocks {
		formatted = append(formatted, indentBlock(block))
	}
	return strings.Join(formatted, "\n")
}

// indentBlock prefixes each line of a block: list-item lines get four
// spaces, everything else two.
func indentBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "<li") || strings.HasPrefix(line, "</li") {
			lines[i] = listItemIndent + line
		} else {
			lines[i] = blockIndent + line
		}
	}
	return strings.Join(lines, "\n")
}

// renderByline builds the author/date section from front matter. The
// datetime comes from metadata when present (with "auto" values resolved
// to the current date); otherwise the current time in the fixed UTC+7
// zone is synthesized. The synthesized value exists only here, it is
// never injected into template substitution.
func (c *Converter) renderByline(meta *Metadata) string {
	datetime, ok := meta.Get("datetime")
	if !ok || datetime == "" {
		datetime = dateutil.FormatByline(c.cfg.now())
	} else if resolved, err := dateutil.ResolveDate(datetime, c.cfg.now().In(dateutil.BylineZone)); err == nil {
		datetime = resolved
	}

	author, _ := meta.Get("author")
	authorPart := `<p class="` + classByline + `">Written by ` + author + `</p>`

	timestamps := `<p class="` + classByline + `">at ` + datetime + `</p>`
	if updated, ok := meta.Get("updatetime"); ok && updated != "" {
		timestamps += "\n" + `<p class="` + classByline + `">edited at ` + updated + `</p>`
	}
	section := `<section class="flex flex-row gap-x-4">` + timestamps + `</section>`

	return `<section class="flex flex-row justify-between mb-5">` + authorPart + "\n" + section + `</section>`
}

// applyTemplate substitutes title, metadata keys, and content into a
// template using global literal replacement. The title is substituted
// first, then every metadata key as {{key}}, and {{content}} last so
// metadata values cannot be re-substituted into the document body.
// A template without the content placeholder is a configuration error.
func applyTemplate(template, title, content string, meta *Metadata) (string, error) {
	out := strings.ReplaceAll(template, titlePlaceholder, title)

	if !strings.Contains(out, contentPlaceholder) {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidTemplate, contentPlaceholder)
	}

	for _, key := range meta.Keys() {
		value, _ := meta.Get(key)
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}

	return strings.ReplaceAll(out, contentPlaceholder, content), nil
}
