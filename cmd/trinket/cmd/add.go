package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trinket/internal/adapters/editor"
	"trinket/internal/application/commands"
)

var addEditor bool

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Save a new snippet",
	Long: `Save a new snippet. The text is taken from the arguments, from $EDITOR
with --editor, or otherwise from standard input.

Examples:
  trinket add "git log --oneline --graph"
  pbpaste | trinket add
  trinket add --editor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := addContent(cmd, args)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		snippet, err := commands.NewSaveSnippetCommand(store, content).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved snippet %s\n", snippet.ID)
		return nil
	},
}

func addContent(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case addEditor:
		opener := editor.NewOpener()
		if !opener.Available() {
			return "", fmt.Errorf("no editor found: set $EDITOR")
		}
		return opener.Compose("")

	case len(args) > 0:
		return strings.Join(args, " "), nil

	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&addEditor, "editor", "e", false, "compose the snippet in $EDITOR")
}
