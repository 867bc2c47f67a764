package ports

import "os/exec"

// EditorOpener hands a draft file to the user's editor
type EditorOpener interface {
	// OpenFile edits path and waits for the editor to exit
	OpenFile(path string) error

	// Command builds the editor process for path without starting it, so
	// the overlay can suspend itself with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
