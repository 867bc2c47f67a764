package application

import (
	"fmt"
	"strings"

	"trinket/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateContent checks that snippet content is non-empty. Whitespace is
// content and is kept as typed.
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{
			Field:   "content",
			Message: "content is required",
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "snippetID" -> "snippet ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"snippetID": "snippet ID",
		"content":   "content",
		"query":     "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateSnippetID checks that id can name a snippet file: non-empty and
// free of path separators.
func ValidateSnippetID(id string) error {
	if err := ValidateRequired("snippetID", id); err != nil {
		return err
	}
	if strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return &ValidationError{
			Field:   "snippetID",
			Message: fmt.Sprintf("invalid snippet ID: %s", id),
		}
	}
	if _, ok := domain.IDFromFileName(domain.FileName(id)); !ok {
		return &ValidationError{
			Field:   "snippetID",
			Message: fmt.Sprintf("invalid snippet ID: %s", id),
		}
	}
	return nil
}
