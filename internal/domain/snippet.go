package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// SnippetExt is the file extension of a snippet's backing file
	SnippetExt = ".txt"

	// PreviewLines is the number of leading lines kept in a preview
	PreviewLines = 3

	// PreviewMaxChars caps the preview length in characters (runes)
	PreviewMaxChars = 200
)

// Snippet is one persisted unit of captured text plus derived display metadata
type Snippet struct {
	ID       string // Filename stem, unique for the lifetime of the store
	Content  string // Raw text, never modified after creation
	Preview  string // Derived from Content, display only
	Created  time.Time
	Modified time.Time
	FilePath string
}

// FileName returns the on-disk file name for a snippet ID
func FileName(id string) string {
	return id + SnippetExt
}

// IDFromFileName returns the snippet ID for a file name and whether the
// name has the snippet extension
func IDFromFileName(name string) (string, bool) {
	if !strings.HasSuffix(name, SnippetExt) {
		return "", false
	}
	id := strings.TrimSuffix(name, SnippetExt)
	if id == "" || strings.HasPrefix(id, ".") {
		return "", false
	}
	return id, true
}

// MakePreview builds the display summary of content: the first three lines
// joined with spaces, cut to PreviewMaxChars characters.
func MakePreview(content string) string {
	lines := splitLines(content, PreviewLines)
	joined := strings.Join(lines, " ")
	return truncateRunes(joined, PreviewMaxChars)
}

// splitLines returns at most limit lines of s. Lines end at "\n" or "\r\n",
// and a terminating newline does not start an empty line. A "\r" not
// followed by "\n" is kept.
func splitLines(s string, limit int) []string {
	var lines []string
	for s != "" && len(lines) < limit {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, strings.TrimSuffix(s[:i], "\r"))
		s = s[i+1:]
	}
	return lines
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// SortNewestFirst orders snippets by creation time, newest first. Snippets
// created in the same instant fall back to descending ID order, which for
// ULIDs is creation order.
func SortNewestFirst(snippets []Snippet) {
	sort.SliceStable(snippets, func(i, j int) bool {
		a, b := snippets[i], snippets[j]
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
		return a.ID > b.ID
	})
}
