package cmd

import (
	"github.com/spf13/cobra"

	"trinket/internal/adapters/hotkey"
	"trinket/internal/domain"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger <add|get>",
	Short: "Signal a running overlay as if a hotkey was pressed",
	Long: `Signal a running overlay as if a hotkey was pressed. Bind these
commands to global hotkeys in your desktop environment.

Examples:
  trinket trigger add
  trinket trigger get`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{domain.HotkeyAdd.String(), domain.HotkeyGet.String()},
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := domain.ParseHotkeyEvent(args[0])
		if err != nil {
			return err
		}
		if err := hotkey.Fire(cfg.TriggerDir, event); err != nil {
			return err
		}
		log.WithField("event", event).Debug("trigger fired")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(triggerCmd)
}
