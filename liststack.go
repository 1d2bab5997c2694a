package md2html

import "strings"

// listFrame tracks one open nested list: its indent level (raw leading
// character count, no tab expansion) and whether it is ordered.
type listFrame struct {
	indent  int
	ordered bool
}

// listStack maintains the open list contexts during one conversion.
// Frames are strictly increasing in indent from bottom to top. The stack
// must be created fresh per conversion call; it is empty at the start and
// end of every conversion, with any frames left open at end-of-input
// force-closed by the segmenter.
type listStack struct {
	frames []listFrame
}

// listEmission is the HTML produced by processing one list item, plus
// whether a list tag was opened with no closing tags before it. The
// segmenter uses openedAtStart to flush a pending paragraph buffer before
// a new list region begins.
type listEmission struct {
	html          string
	openedAtStart bool
}

// item computes the open/close tag transitions for a list item at the
// given indent and returns them joined with the wrapping <li> element.
// content must already be inline-formatted.
//
// Frames deeper than indent are popped with closing tags. A frame is
// pushed (with an opening tag) when the stack is empty or the top frame is
// shallower. At equal indent the existing frame is reused regardless of
// the current marker kind, so switching marker style mid-list does not
// start a new list and the closing tag follows the original frame.
func (s *listStack) item(indent int, ordered bool, content string) listEmission {
	var lines []string

	closed := false
	for len(s.frames) > 0 && s.top().indent > indent {
		lines = append(lines, closingTag(s.pop()))
		closed = true
	}

	opened := false
	if len(s.frames) == 0 || s.top().indent < indent {
		s.frames = append(s.frames, listFrame{indent: indent, ordered: ordered})
		lines = append(lines, openingTag(ordered))
		opened = true
	}

	lines = append(lines, "<li>"+content+"</li>")
	return listEmission{
		html:          strings.Join(lines, "\n"),
		openedAtStart: opened && !closed,
	}
}

// closeAll pops every remaining frame and returns the closing tags joined
// with newlines, innermost first. Returns "" when the stack is empty.
func (s *listStack) closeAll() string {
	var lines []string
	for len(s.frames) > 0 {
		lines = append(lines, closingTag(s.pop()))
	}
	return strings.Join(lines, "\n")
}

func (s *listStack) empty() bool {
	return len(s.frames) == 0
}

func (s *listStack) top() listFrame {
	return s.frames[len(s.frames)-1]
}

func (s *listStack) pop() listFrame {
	frame := s.top()
	s.frames = s.frames[:len(s.frames)-1]
	return frame
}

func openingTag(ordered bool) string {
	if ordered {
		return `<ol class="` + classOrdered + `">`
	}
	return `<ul class="` + classUnordered + `">`
}

func closingTag(frame listFrame) string {
	if frame.ordered {
		return "</ol>"
	}
	return "</ul>"
}
