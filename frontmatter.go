package md2html

import "strings"

// Metadata is an ordered key-to-value mapping parsed from front matter.
// Insertion order is preserved; setting an existing key overwrites its
// value in place (last wins).
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata creates an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set stores a key-value pair, keeping the key's first insertion position.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	return m.keys
}

// Len returns the number of stored keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// ExtractFrontMatter strips an optional leading "---"-delimited metadata
// block from text, returning the parsed mapping and the remaining body.
//
// The block must start at position zero. Each line inside it is split on
// the first colon; key and value are whitespace-trimmed, and a value
// wrapped in one matching pair of single or double quotes is unquoted.
// Lines without a colon are skipped. If the opening delimiter is absent,
// or no closing delimiter follows, the entire input is returned as body
// with an empty mapping. A "---" later in the body is ordinary text.
func ExtractFrontMatter(text string) (*Metadata, string) {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok || !isFrontMatterDelimiter(first) {
		return NewMetadata(), text
	}

	meta := NewMetadata()
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if isFrontMatterDelimiter(line) {
			return meta, tail
		}
		if key, value, found := strings.Cut(line, ":"); found {
			meta.Set(strings.TrimSpace(key), unquote(strings.TrimSpace(value)))
		}
		if !more {
			// No closing delimiter: not front matter after all.
			return NewMetadata(), text
		}
		rest = tail
	}
}

// isFrontMatterDelimiter reports whether line is a triple-dash delimiter.
// Trailing whitespace is tolerated, leading whitespace is not.
func isFrontMatterDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == "---"
}

// unquote strips one matching pair of surrounding single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if (value[0] == '"' && value[len(value)-1] == '"') ||
		(value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
