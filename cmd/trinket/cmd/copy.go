package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"trinket/internal/adapters/clipboard"
	"trinket/internal/application/commands"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a snippet to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sink := clipboard.NewSink()
		if !sink.Available() {
			return fmt.Errorf("no clipboard utility found")
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		snippet, err := commands.NewCopySnippetCommand(store, sink, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied snippet %s to clipboard\n", snippet.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
