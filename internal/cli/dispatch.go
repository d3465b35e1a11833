package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/selector"
)

// needsSelection reports whether argv calls for interactive command
// disambiguation: no arguments at all, or a leading word that is
// neither a flag nor a registered command name.
func needsSelection(root *cobra.Command, args []string) bool {
	if len(args) == 0 {
		return true
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		return false
	}
	return !knownCommand(root, first)
}

func knownCommand(root *cobra.Command, name string) bool {
	// Cobra adds these lazily on Execute, so Commands() may not list
	// them yet.
	switch name {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, cmd := range root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return false
}

// commandCatalog lists the selectable subcommands: identifier = command
// name, secondary label = short help text.
func commandCatalog(root *cobra.Command) (*catalog.Catalog, error) {
	var entries []catalog.Entry
	for _, cmd := range root.Commands() {
		if cmd.Hidden || !cmd.IsAvailableCommand() {
			continue
		}
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		entries = append(entries, catalog.Entry{
			ID:        cmd.Name(),
			Primary:   cmd.Name(),
			Secondary: cmd.Short,
		})
	}
	catalog.SortByID(entries)
	return catalog.New(entries)
}

// selectCommand resolves a command name interactively, seeding the
// filter with the words the user already typed. An empty name with a
// nonzero code means the selection was cancelled.
func selectCommand(args []string) (name string, code int, err error) {
	cat, err := commandCatalog(rootCmd)
	if err != nil {
		return "", 1, err
	}

	res, err := selector.Select(cat, selector.Options{
		Query:  strings.Join(args, " "),
		Finder: cfg.Finder,
		Header: "Select a command",
	})
	if err != nil {
		return "", 1, err
	}
	if !res.Resolved() {
		return "", res.Code, nil
	}
	return res.Entry.ID, 0, nil
}
