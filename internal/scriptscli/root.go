// Package scriptscli implements the flow-scripts command-line
// interface: discover project scripts, resolve one interactively, and
// run it.
package scriptscli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/config"
	"github.com/flowtool/flow/internal/scripts"
	"github.com/flowtool/flow/internal/selector"
	"github.com/flowtool/flow/internal/shellquote"
	"github.com/flowtool/flow/internal/ui"
)

var (
	listFlag bool
	dirFlag  string

	// exitCode carries the script's (or the cancellation's) exit code
	// out of cobra, which only models success/failure.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "flow-scripts [query...] [-- script-args...]",
	Short: "Fuzzy-pick and run a project script",
	Long: `flow-scripts scans the project's scripts/ directory, lets you pick a
script the fzf way (or with a built-in prompt when fzf is missing),
and runs it. Arguments after -- are passed to the script.

Typing an exact script name skips the picker entirely.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Main runs the flow-scripts CLI and returns the process exit code.
func Main(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		return 1
	}
	return exitCode
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ui.ConfigureTheme(cfg.UI.Accent)

	queryArgs, scriptArgs := splitAtDash(args, cmd.ArgsLenAtDash())

	explicit := dirFlag
	if explicit == "" {
		explicit = cfg.ScriptsDir
	}
	root, dir, err := scripts.Locate(explicit)
	if err != nil {
		return err
	}

	found, err := scripts.DiscoverDir(root, dir)
	if err != nil {
		return err
	}

	if listFlag {
		printList(cmd.OutOrStdout(), found)
		return nil
	}

	cat, err := catalog.New(scripts.Entries(found))
	if err != nil {
		return err
	}

	res, err := selector.Select(cat, selector.Options{
		Query:  strings.Join(queryArgs, " "),
		Finder: cfg.Finder,
		Header: "Select a script to run",
	})
	if err != nil {
		if errors.Is(err, selector.ErrEmptyCatalog) {
			return fmt.Errorf("no scripts found in %s", dir)
		}
		return err
	}
	if !res.Resolved() {
		fmt.Fprintln(cmd.ErrOrStderr(), "No script selected.")
		exitCode = res.Code
		return nil
	}

	selected, ok := scriptByName(found, res.Entry.ID)
	if !ok {
		return fmt.Errorf("script %q disappeared during selection", res.Entry.ID)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), runMessage(selected, scriptArgs))
	code, err := scripts.Run(selected, root, scriptArgs)
	if err != nil {
		return err
	}
	exitCode = code
	return nil
}

// splitAtDash separates the selection query from the arguments that
// belong to the script. dashAt is cobra's ArgsLenAtDash: the index in
// args where the words after -- begin, or -1 when no -- was given.
func splitAtDash(args []string, dashAt int) (query, rest []string) {
	if dashAt < 0 {
		return args, nil
	}
	return args[:dashAt], args[dashAt:]
}

// runMessage announces the script about to run, with any pass-through
// arguments shown shell-quoted.
func runMessage(s scripts.Script, args []string) string {
	msg := fmt.Sprintf("%s Running %s", ui.Hint("→"), ui.FilePath(s.Rel))
	if len(args) > 0 {
		msg += " " + ui.Hint(shellquote.Join(args...))
	}
	return msg
}

func scriptByName(found []scripts.Script, name string) (scripts.Script, bool) {
	for _, s := range found {
		if s.Name == name {
			return s, true
		}
	}
	return scripts.Script{}, false
}

func printList(w io.Writer, found []scripts.Script) {
	for _, s := range found {
		line := fmt.Sprintf("%s  %s", s.Name, ui.Hint("("+s.Rel+")"))
		if s.Description != "" {
			line += "  " + s.Description
		}
		fmt.Fprintln(w, line)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&listFlag, "list", false, "list discovered scripts and exit")
	rootCmd.Flags().StringVar(&dirFlag, "dir", "", "scripts directory (overrides discovery)")
}
