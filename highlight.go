package md2html

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightCode renders source through chroma with inline styles. The
// language tag selects the lexer, falling back to plain text when unknown.
// Returns ok=false when tokenization or formatting fails so the caller can
// fall back to the verbatim rendering; highlighting never fails a
// conversion.
//
// Note: unlike the verbatim path, chroma escapes HTML-special characters
// in the source as a side effect of highlighting.
func highlightCode(source, language, style string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	st := styles.Get(style)
	if st == nil {
		st = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(&buf, st, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
