package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestMakePreview(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"empty", "", ""},
		{"single line", "hello world", "hello world"},
		{"five lines keeps three", "one\ntwo\nthree\nfour\nfive", "one two three"},
		{"trailing newline", "one\ntwo\n", "one two"},
		{"crlf endings", "one\r\ntwo\r\nthree\r\n", "one two three"},
		{"lone carriage return at end", "a\r", "a\r"},
		{"carriage return mid line", "a\rb\nc", "a\rb c"},
		{"crlf then unterminated cr", "a\r\nb\r", "a b\r"},
		{"blank middle line", "one\n\nthree\nfour", "one  three"},
		{"only newlines", "\n\n\n\n", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MakePreview(tt.content)
			if result != tt.expected {
				t.Errorf("MakePreview(%q) = %q, expected %q", tt.content, result, tt.expected)
			}
		})
	}
}

func TestMakePreview_Truncates(t *testing.T) {
	line := strings.Repeat("x", 90)
	content := strings.Join([]string{line, line, line, line, line}, "\n")

	preview := MakePreview(content)

	if n := utf8.RuneCountInString(preview); n != PreviewMaxChars {
		t.Errorf("expected %d characters, got %d", PreviewMaxChars, n)
	}
	if !strings.HasPrefix(preview, line+" "+line+" ") {
		t.Errorf("preview does not start with the first lines: %q", preview)
	}
}

func TestMakePreview_TruncatesOnRuneBoundary(t *testing.T) {
	content := strings.Repeat("é", 250)

	preview := MakePreview(content)

	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(preview); n != PreviewMaxChars {
		t.Errorf("expected %d runes, got %d", PreviewMaxChars, n)
	}
}

func TestIDFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{"01JABCDEF0123456789ABCDEFG.txt", "01JABCDEF0123456789ABCDEFG", true},
		{"6f1c2d4e-0000-4000-8000-000000000000.txt", "6f1c2d4e-0000-4000-8000-000000000000", true},
		{"notes.md", "", false},
		{".txt", "", false},
		{".trinket-123.tmp", "", false},
		{".hidden.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := IDFromFileName(tt.name)
			if ok != tt.wantOK || id != tt.id {
				t.Errorf("IDFromFileName(%q) = (%q, %v), expected (%q, %v)", tt.name, id, ok, tt.id, tt.wantOK)
			}
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	snippets := []Snippet{
		{ID: "A", Created: base},
		{ID: "C", Created: base.Add(2 * time.Minute)},
		{ID: "B", Created: base.Add(time.Minute)},
		{ID: "D", Created: base.Add(2 * time.Minute)},
	}

	SortNewestFirst(snippets)

	var got []string
	for _, s := range snippets {
		got = append(got, s.ID)
	}
	if strings.Join(got, "") != "DCBA" {
		t.Errorf("unexpected order: %v", got)
	}
}
