package commands

import (
	"context"
	"errors"
	"testing"

	"trinket/internal/application"
)

func TestSearchSnippetsCommand(t *testing.T) {
	// Saved oldest first, so the corpus order is the reverse
	repo := newMemoryRepo("Go channels", "grocery list", "GOLANG tips", "unrelated")

	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{"empty query returns all newest first", "", 0, []string{"unrelated", "GOLANG tips", "grocery list", "Go channels"}},
		{"case insensitive", "go", 0, []string{"GOLANG tips", "Go channels"}},
		{"limit", "go", 1, []string{"GOLANG tips"}},
		{"no match", "rust", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewSearchSnippetsCommand(repo, tt.query, tt.limit).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			got := make([]string, 0, len(results))
			for _, s := range results {
				got = append(got, s.Content)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("result %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestListSnippetsCommand(t *testing.T) {
	repo := newMemoryRepo("a", "b", "c")

	all, err := NewListSnippetsCommand(repo, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(all) != 3 || all[0].Content != "c" {
		t.Errorf("expected newest first, got %+v", all)
	}

	two, err := NewListSnippetsCommand(repo, 2).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(two) != 2 {
		t.Errorf("expected 2 results, got %d", len(two))
	}
}

func TestListSnippetsCommand_Error(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errBoom

	if _, err := NewListSnippetsCommand(repo, 0).Execute(context.Background()); !errors.Is(err, errBoom) {
		t.Errorf("expected store error, got %v", err)
	}
	if _, err := NewSearchSnippetsCommand(repo, "x", 0).Execute(context.Background()); !errors.Is(err, errBoom) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestGetSnippetCommand(t *testing.T) {
	repo := newMemoryRepo("first")

	got, err := NewGetSnippetCommand(repo, "id01").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Content != "first" {
		t.Errorf("got %q", got.Content)
	}

	_, err = NewGetSnippetCommand(repo, "missing").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
