package ports

// ClipboardSink places finalized text on the system clipboard
type ClipboardSink interface {
	WriteText(text string) error
}
