package md2html

import "testing"

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "just some text",
			expected: "just some text",
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: `<strong class="font-bold">bold</strong>`,
		},
		{
			name:     "italic",
			input:    "*italic*",
			expected: `<em class="italic">italic</em>`,
		},
		{
			name:     "bold before italic",
			input:    "**bold** and *italic*",
			expected: `<strong class="font-bold">bold</strong> and <em class="italic">italic</em>`,
		},
		{
			name:     "image",
			input:    "![alt text](image.png)",
			expected: `<img src="image.png" alt="alt text" />`,
		},
		{
			name:     "link",
			input:    "[click here](https://example.com)",
			expected: `<a href="https://example.com" class="underline">click here</a>`,
		},
		{
			name:     "image before link",
			input:    "![logo](logo.png) and [site](https://example.com)",
			expected: `<img src="logo.png" alt="logo" /> and <a href="https://example.com" class="underline">site</a>`,
		},
		{
			name:     "inline code",
			input:    "run `go build` now",
			expected: "run <code class=\"bg-slate-300\">go build</code> now",
		},
		{
			name:     "non-greedy bold picks first close",
			input:    "**a** b **c**",
			expected: `<strong class="font-bold">a</strong> b <strong class="font-bold">c</strong>`,
		},
		{
			name:     "unclosed bold unchanged",
			input:    "**unclosed",
			expected: "**unclosed",
		},
		{
			name:     "unclosed link unchanged",
			input:    "[text with no url",
			expected: "[text with no url",
		},
		{
			name:     "earlier rules see raw backtick content",
			input:    "`**x**`",
			expected: "<code class=\"bg-slate-300\"><strong class=\"font-bold\">x</strong></code>",
		},
		{
			name:     "multiple constructs on one line",
			input:    "*a* **b** [c](d)",
			expected: `<em class="italic">a</em> <strong class="font-bold">b</strong> <a href="d" class="underline">c</a>`,
		},
		{
			name:     "html passes through verbatim",
			input:    "a < b & c > d",
			expected: "a < b & c > d",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatInline(tt.input)
			if got != tt.expected {
				t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
