package md2html

import (
	"fmt"
	"regexp"
	"strings"
)

// Precompiled line-classification patterns.
var (
	headerPattern        = regexp.MustCompile(`^(#{1,6})\s(.+)$`)
	unorderedListPattern = regexp.MustCompile(`^(\s*)[-*]\s(.+)$`)
	orderedListPattern   = regexp.MustCompile(`^(\s*)\d+\.\s(.+)$`)
)

const fenceDelimiter = "```"

// blockKind classifies the content of the paragraph accumulation buffer.
// The kind of the first fragment appended decides whether the flushed
// block gets a paragraph wrapper. Carrying the kind explicitly replaces
// the original's fragile check of whether the rendered text happened to
// start with "<h", "<ol" or "<ul".
type blockKind int

const (
	kindParagraph blockKind = iota
	kindHeader
	kindList
)

// segmenter walks the body line by line and accumulates HTML block
// fragments. It is created fresh per conversion call.
type segmenter struct {
	highlightStyle string

	blocks []string
	buffer []string
	kind   blockKind
	lists  listStack

	inFence   bool
	fenceLang string
	fenceBuf  []string
}

// segment converts body text into an ordered sequence of HTML block
// fragments. State machine over lines with states normal and in-fence.
func (c *Converter) segment(body string) []string {
	s := &segmenter{highlightStyle: c.cfg.highlightStyle}
	lines := strings.Split(body, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceDelimiter) {
			s.toggleFence(trimmed)
			continue
		}
		if s.inFence {
			s.fenceBuf = append(s.fenceBuf, line)
			continue
		}

		if trimmed == "" {
			s.flush()
			// Keep the list open across the gap when the next line
			// continues it.
			if !s.lists.empty() && !nextLineIsList(lines, i) {
				s.blocks = append(s.blocks, s.lists.closeAll())
			}
			continue
		}

		s.text(line)
	}

	// End of input: an unterminated fence silently drops its buffered
	// content; the paragraph buffer and open frames are flushed.
	s.flush()
	if tags := s.lists.closeAll(); tags != "" {
		s.blocks = append(s.blocks, tags)
	}
	return s.blocks
}

// toggleFence handles a fence delimiter line. Opening flushes the pending
// paragraph and closes open lists, then records the language tag; closing
// emits the collected lines as one code block.
func (s *segmenter) toggleFence(trimmed string) {
	if !s.inFence {
		s.flush()
		if tags := s.lists.closeAll(); tags != "" {
			s.blocks = append(s.blocks, tags)
		}
		s.inFence = true
		s.fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, fenceDelimiter))
		s.fenceBuf = nil
		return
	}
	s.blocks = append(s.blocks, s.renderCodeBlock())
	s.inFence = false
	s.fenceBuf = nil
}

// renderCodeBlock emits the buffered fence content as a single block.
// Lines are verbatim: no inline formatting, no markdown reinterpretation.
func (s *segmenter) renderCodeBlock() string {
	if s.highlightStyle != "" {
		source := strings.Join(s.fenceBuf, "\n")
		if html, ok := highlightCode(source, s.fenceLang, s.highlightStyle); ok {
			return html
		}
	}
	return "<pre>\n  <code class=\"language-" + s.fenceLang + "\">\n    " +
		strings.Join(s.fenceBuf, "\n    ") + "\n  </code>\n</pre>"
}

// text processes one non-blank, non-fence line in the normal state.
func (s *segmenter) text(line string) {
	if m := headerPattern.FindStringSubmatch(line); m != nil {
		// Headers do not close open lists; the frames stay on the stack.
		level := len(m[1])
		html := fmt.Sprintf("<h%d class=%q>%s</h%d>",
			level, headerClasses[level], formatInline(m[2]), level)
		s.append(html, kindHeader)
		return
	}

	if indent, ordered, content, ok := matchListItem(line); ok {
		em := s.lists.item(indent, ordered, formatInline(content))
		if em.openedAtStart {
			s.flush()
		}
		s.append(em.html, kindList)
		return
	}

	// Ordinary text while lists are open: close every remaining frame
	// before the line itself.
	if !s.lists.empty() {
		s.append(s.lists.closeAll()+"\n"+formatInline(line), kindList)
		return
	}

	s.append(formatInline(line), kindParagraph)
}

// append adds a fragment to the paragraph buffer. The first fragment
// decides the buffer's kind.
func (s *segmenter) append(fragment string, kind blockKind) {
	if len(s.buffer) == 0 {
		s.kind = kind
	}
	s.buffer = append(s.buffer, fragment)
}

// flush emits the paragraph buffer as one block, space-joined and wrapped
// in a paragraph tag unless the buffer holds header or list content.
func (s *segmenter) flush() {
	if len(s.buffer) == 0 {
		return
	}
	content := strings.Join(s.buffer, " ")
	if s.kind == kindParagraph {
		content = `<p class="` + classParagraph + `">` + content + `</p>`
	}
	s.blocks = append(s.blocks, content)
	s.buffer = nil
	s.kind = kindParagraph
}

// matchListItem classifies a list-item line, returning its raw indent
// width, marker kind, and content.
func matchListItem(line string) (indent int, ordered bool, content string, ok bool) {
	if m := unorderedListPattern.FindStringSubmatch(line); m != nil {
		return len(m[1]), false, m[2], true
	}
	if m := orderedListPattern.FindStringSubmatch(line); m != nil {
		return len(m[1]), true, m[2], true
	}
	return 0, false, "", false
}

// nextLineIsList reports whether the line after index i is a list item.
func nextLineIsList(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	_, _, _, ok := matchListItem(lines[i+1])
	return ok
}
