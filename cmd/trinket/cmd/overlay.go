package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trinket/internal/adapters/clipboard"
	"trinket/internal/adapters/editor"
	"trinket/internal/adapters/filesystem"
	"trinket/internal/adapters/hotkey"
	"trinket/internal/adapters/tui"
	"trinket/internal/application/coordinator"
	"trinket/internal/domain"
	"trinket/internal/logging"
	"trinket/internal/ports"
)

// runOverlay loads the snippets, starts the hotkey bridge and runs the TUI
// until the user quits.
func runOverlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	store := filesystem.NewStore(cfg.SnippetsDir, logger)
	if err := store.Initialize(); err != nil {
		logger.WithError(err).Error("failed to initialize snippet store")
		return err
	}
	snippets, err := store.LoadAll()
	if err != nil {
		logger.WithError(err).Error("failed to load snippets")
		return err
	}
	logger.WithField("count", len(snippets)).Info("snippets loaded")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events := make(chan domain.HotkeyEvent, cfg.EventBuffer)
	var listener ports.HotkeyListener = hotkey.NewTriggerListener(cfg.TriggerDir, logger)
	go func() {
		// The overlay keeps working from its own keys without the bridge
		if err := listener.Listen(ctx, events); err != nil {
			logger.WithError(err).Error("hotkey listener stopped")
		}
	}()

	sink := clipboard.NewSink()
	if !sink.Available() {
		logger.Warn("no clipboard utility found, copies will fail")
	}

	opts := tui.Options{
		PollInterval: cfg.PollInterval,
		TriggerDir:   cfg.TriggerDir,
		Log:          logger,
	}
	if opener := editor.NewOpener(); opener.Available() {
		opts.Editor = opener
	}

	coord := coordinator.New(store, sink, events, snippets, logger)
	p := tea.NewProgram(tui.NewApp(coord, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()
	if err != nil {
		logger.WithError(err).Error("overlay exited with error")
	}
	return err
}
