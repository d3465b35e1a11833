// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowtool/flow/internal/config"
	"github.com/flowtool/flow/internal/ui"
)

var cfg *config.Config

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow - a fuzzy-dispatched developer toolbox",
	Long: `Flow is a small developer toolbox whose subcommands are picked the
same way you pick files in fzf: run it with no arguments, or with a
partial command name, and select interactively.

Typing an exact command name behaves like any other CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return ensureConfig()
	},
}

// ensureConfig loads the config once and applies the UI theme.
func ensureConfig() error {
	if cfg != nil {
		return nil
	}
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ui.ConfigureTheme(cfg.UI.Accent)
	return nil
}

// Main runs the flow CLI and returns the process exit code. When the
// arguments name no known subcommand, the command is resolved
// interactively before cobra dispatches.
func Main(args []string) int {
	if err := ensureConfig(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		return 1
	}

	if needsSelection(rootCmd, args) {
		name, code, err := selectCommand(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
			return 1
		}
		if name == "" {
			fmt.Fprintln(os.Stderr, "No command selected.")
			return code
		}
		args = []string{name}
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		return 1
	}
	return 0
}
