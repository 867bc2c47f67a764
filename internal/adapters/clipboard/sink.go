// Package clipboard writes selected snippets to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"trinket/internal/ports"
)

// Sink implements ports.ClipboardSink with github.com/atotto/clipboard
type Sink struct{}

// Ensure Sink implements ClipboardSink
var _ ports.ClipboardSink = (*Sink)(nil)

// NewSink creates a system clipboard sink
func NewSink() *Sink {
	return &Sink{}
}

// Available reports whether a clipboard utility was found
func (s *Sink) Available() bool {
	return !clipboard.Unsupported
}

// WriteText replaces the clipboard contents with text
func (s *Sink) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
