package md2html

import "regexp"

// inlineRule pairs a precompiled pattern with its replacement.
type inlineRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// inlineRules is applied in order, each rule as a single non-overlapping
// left-to-right scan over the current state of the line. Order is a
// contract:
//
//   - bold before italic: italic's single-asterisk pattern would otherwise
//     partially match bold delimiters
//   - image before link: image syntax is link syntax prefixed with "!",
//     running link first would leave a stray "!" and a broken anchor
//   - inline code last so backticks inside other constructs are untouched
//
// Patterns are non-greedy: the first closing delimiter after each opener
// wins. No rule re-scans its own output (single pass, not fixed-point), so
// nested and overlapping emphasis are unsupported.
var inlineRules = []inlineRule{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), `<strong class="` + classStrong + `">$1</strong>`},
	{regexp.MustCompile(`\*(.+?)\*`), `<em class="` + classEm + `">$1</em>`},
	{regexp.MustCompile(`!\[(.+?)\]\((.+?)\)`), `<img src="$2" alt="$1" />`},
	{regexp.MustCompile(`\[(.+?)\]\((.+?)\)`), `<a href="$2" class="` + classLink + `">$1</a>`},
	{regexp.MustCompile("`(.*?)`"), `<code class="` + classCode + `">$1</code>`},
}

// formatInline transforms one line of text into an HTML fragment with no
// block-level tags.
func formatInline(line string) string {
	for _, rule := range inlineRules {
		line = rule.pattern.ReplaceAllString(line, rule.replacement)
	}
	return line
}
