package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"trinket/internal/adapters/filesystem"
	"trinket/internal/config"
	"trinket/internal/logging"
)

// Version is set at build time with -ldflags "-X trinket/cmd/trinket/cmd.Version=..."
var Version = "dev"

var (
	configPath  string
	snippetsDir string

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trinket",
	Short: "Keep small text snippets one hotkey away",
	Long: `trinket stores short text snippets as plain files and brings them back
through a terminal overlay driven by two global hotkeys.

Run without a subcommand to start the overlay. Bind "trinket trigger add"
and "trinket trigger get" to hotkeys in your window manager or desktop
environment to open the add and get panels.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.OverrideSnippetsDir(snippetsDir); err != nil {
			return err
		}
		cfg = loaded

		// Subcommands log to stderr; the overlay opens its own log file
		logger, _, err := logging.New(logging.Options{Level: cfg.LogLevel})
		if err != nil {
			return err
		}
		logger.SetOutput(cmd.ErrOrStderr())
		log = logger
		return nil
	},
	RunE: runOverlay,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/trinket/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&snippetsDir, "dir", "d", "", "snippets directory (overrides the config file)")
}

// openStore returns an initialized snippet store for the configured directory
func openStore() (*filesystem.Store, error) {
	store := filesystem.NewStore(cfg.SnippetsDir, log)
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	return store, nil
}
