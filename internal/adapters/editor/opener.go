package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"trinket/internal/ports"
)

const draftPattern = "trinket-draft-*.txt"

// Opener implements ports.EditorOpener
type Opener struct{}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Available reports whether an editor can be found
func (o *Opener) Available() bool {
	return o.findEditor() != ""
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Compose opens a draft prefilled with initial in the editor and returns
// the text saved to it once the editor exits
func (o *Opener) Compose(initial string) (string, error) {
	path, err := NewDraft(initial)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	if err := o.OpenFile(path); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}
	return ReadDraft(path)
}

// NewDraft writes initial to a new scratch file and returns its path
func NewDraft(initial string) (string, error) {
	f, err := os.CreateTemp("", draftPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create draft: %w", err)
	}
	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write draft: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write draft: %w", err)
	}
	return f.Name(), nil
}

// ReadDraft returns the content of a draft file and removes it
func ReadDraft(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
