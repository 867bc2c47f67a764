package commands

import (
	"context"
	"errors"
	"testing"

	"trinket/internal/application"
)

func TestCopySnippetCommand(t *testing.T) {
	repo := newMemoryRepo("copy me\nplease")
	clip := &recordingClipboard{}

	snippet, err := NewCopySnippetCommand(repo, clip, "id01").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if clip.text != "copy me\nplease" {
		t.Errorf("clipboard = %q", clip.text)
	}
	if snippet.ID != "id01" {
		t.Errorf("unexpected snippet %s", snippet.ID)
	}
}

func TestCopySnippetCommand_NotFound(t *testing.T) {
	clip := &recordingClipboard{}

	_, err := NewCopySnippetCommand(newMemoryRepo(), clip, "nope").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if clip.text != "" {
		t.Error("clipboard must not be written")
	}
}

func TestCopySnippetCommand_ClipboardError(t *testing.T) {
	clip := &recordingClipboard{err: errBoom}

	_, err := NewCopySnippetCommand(newMemoryRepo("x"), clip, "id01").Execute(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}
