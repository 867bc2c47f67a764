package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trinket/internal/application/commands"
	"trinket/internal/domain"
)

const listDateFormat = "2006-01-02 15:04"

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		snippets, err := commands.NewListSnippetsCommand(store, listLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printSnippets(cmd.OutOrStdout(), snippets)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find snippets containing a substring",
	Long: `Find snippets whose full text contains the query, ignoring case.

Examples:
  trinket search kubectl
  trinket search "docker run"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		snippets, err := commands.NewSearchSnippetsCommand(store, query, listLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printSnippets(cmd.OutOrStdout(), snippets)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full text of a snippet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		snippet, err := commands.NewGetSnippetCommand(store, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), snippet.Content)
		return nil
	},
}

func printSnippets(w io.Writer, snippets []domain.Snippet) {
	for _, s := range snippets {
		fmt.Fprintf(w, "%s  %s  %s\n", s.ID, s.Created.Local().Format(listDateFormat), s.Preview)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of snippets (0 for all)")
	searchCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of snippets (0 for all)")
}
