package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Search returns the indices of corpus entries whose content contains query,
// ignoring case, in corpus order. An empty query matches every entry.
func Search(query string, corpus []Snippet) []int {
	indices := make([]int, 0, len(corpus))

	if query == "" {
		for i := range corpus {
			indices = append(indices, i)
		}
		return indices
	}

	needle := strings.ToLower(query)
	for i, s := range corpus {
		if strings.Contains(strings.ToLower(s.Content), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Span is a half-open byte range [Start, End) of a match inside a text
type Span struct {
	Start int
	End   int
}

// Highlight returns the non-overlapping, case-insensitive matches of query in
// text, left to right, as byte offsets into text.
func Highlight(text, query string) []Span {
	if query == "" || text == "" {
		return nil
	}

	needle := []rune(query)
	var spans []Span

	for i := 0; i < len(text); {
		if end, ok := matchFoldAt(text, i, needle); ok {
			spans = append(spans, Span{Start: i, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// matchFoldAt reports whether needle matches text starting at byte offset
// start, comparing rune by rune in lower case, and returns the end offset.
func matchFoldAt(text string, start int, needle []rune) (int, bool) {
	pos := start
	for _, want := range needle {
		if pos >= len(text) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.ToLower(got) != unicode.ToLower(want) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}
