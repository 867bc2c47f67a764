package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "content",
			value:     "some text",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "content",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "content",
			value:     " \n\t ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if !errors.Is(err, ErrEmptyContent) {
					t.Errorf("expected blank content to match ErrEmptyContent")
				}
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"text", "some text", false},
		{"spaces", "   ", false},
		{"newlines and tabs", "\n\t\n", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContent(%q) error = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyContent) {
				t.Errorf("expected empty content to match ErrEmptyContent")
			}
		})
	}
}

func TestValidateSnippetID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"ulid", "01JABCDEF0123456789ABCDEFG", false},
		{"uuid", "6f1c2d4e-0000-4000-8000-000000000000", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"backslash", `a\b`, true},
		{"hidden", ".tmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnippetID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSnippetID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("save", "/tmp/x.txt", cause)

	if !errors.Is(err, ErrIO) {
		t.Error("expected IOError to match ErrIO")
	}
	if !errors.Is(err, cause) {
		t.Error("expected IOError to unwrap to its cause")
	}
	if err.Error() != "save /tmp/x.txt: disk full" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
