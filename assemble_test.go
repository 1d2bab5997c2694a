package md2html

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fixedClock pins the converter clock for byline synthesis tests.
func fixedClock(c *Converter) {
	c.cfg.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestRenderByline(t *testing.T) {
	tests := []struct {
		name     string
		meta     map[string]string
		contains []string
		excludes []string
	}{
		{
			name: "author and explicit datetime",
			meta: map[string]string{"author": "Bar", "datetime": "2024-01-01 10:00:00"},
			contains: []string{
				`<p class="text-xs text-slate-500">Written by Bar</p>`,
				`<p class="text-xs text-slate-500">at 2024-01-01 10:00:00</p>`,
			},
			excludes: []string{"edited at"},
		},
		{
			name: "datetime synthesized in UTC+7",
			meta: map[string]string{"author": "Bar"},
			// 12:00 UTC is 19:00 in the fixed byline zone.
			contains: []string{"at 2024-05-01 19:00:00"},
		},
		{
			name: "auto datetime resolves to current date",
			meta: map[string]string{"author": "Bar", "datetime": "auto"},
			contains: []string{
				`<p class="text-xs text-slate-500">at 2024-05-01</p>`,
			},
		},
		{
			name: "updatetime adds edited line",
			meta: map[string]string{"author": "Bar", "datetime": "x", "updatetime": "y"},
			contains: []string{
				"at x</p>",
				`<p class="text-xs text-slate-500">edited at y</p>`,
			},
		},
		{
			name:     "missing author renders empty",
			meta:     map[string]string{"title": "Doc"},
			contains: []string{"Written by </p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := New()
			fixedClock(conv)

			meta := NewMetadata()
			for k, v := range tt.meta {
				meta.Set(k, v)
			}

			got := conv.renderByline(meta)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("byline missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("byline unexpectedly contains %q:\n%s", bad, got)
				}
			}
		})
	}
}

func TestAssembleBodyBylinePlacement(t *testing.T) {
	conv := New()
	fixedClock(conv)

	meta := NewMetadata()
	meta.Set("author", "Bar")

	got := conv.assembleBody(meta, []string{pOpen + "x</p>"})

	// Byline comes first and is not indented; blocks after it are.
	if !strings.HasPrefix(got, `<section class="flex flex-row justify-between mb-5">`) {
		t.Errorf("body does not start with byline section:\n%s", got)
	}
	if !strings.Contains(got, "\n  "+pOpen+"x</p>") {
		t.Errorf("block after byline not indented:\n%s", got)
	}
}

func TestAssembleBodyWithoutMetadata(t *testing.T) {
	conv := New()
	got := conv.assembleBody(NewMetadata(), []string{pOpen + "x</p>"})
	want := "  " + pOpen + "x</p>"
	if got != want {
		t.Errorf("assembleBody = %q, want %q", got, want)
	}
}

func TestApplyTemplate(t *testing.T) {
	meta := NewMetadata()
	meta.Set("author", "Bar")

	tests := []struct {
		name     string
		template string
		title    string
		content  string
		want     string
		wantErr  error
	}{
		{
			name:     "all placeholders substituted",
			template: "T:{{title}} A:{{author}} C:{{content}}",
			title:    "X",
			content:  "BODY",
			want:     "T:X A:Bar C:BODY",
		},
		{
			name:     "global replacement",
			template: "{{title}}/{{title}} {{content}} {{content}}",
			title:    "X",
			content:  "B",
			want:     "X/X B B",
		},
		{
			name:     "unknown placeholder left literal",
			template: "{{missing}} {{content}}",
			content:  "B",
			want:     "{{missing}} B",
		},
		{
			name:     "missing content placeholder",
			template: "<html>{{title}}</html>",
			title:    "X",
			wantErr:  ErrInvalidTemplate,
		},
		{
			name:     "empty template",
			template: "",
			wantErr:  ErrInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyTemplate(tt.template, tt.title, tt.content, meta)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("applyTemplate = %q, want %q", got, tt.want)
			}
		})
	}
}
