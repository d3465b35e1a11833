package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtool/flow/docs"
	"github.com/flowtool/flow/internal/catalog"
	"github.com/flowtool/flow/internal/selector"
	"github.com/flowtool/flow/internal/ui"
)

var docsPlain bool

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse the bundled documentation",
	Long: `Browse the documentation shipped inside the binary. With no
argument, or with a partial topic name, the topic is picked
interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

func runDocs(cmd *cobra.Command, args []string) error {
	topics, err := docs.Topics()
	if err != nil {
		return err
	}

	byID := make(map[string]docs.Topic, len(topics))
	entries := make([]catalog.Entry, len(topics))
	for i, t := range topics {
		byID[t.ID] = t
		entries[i] = catalog.Entry{ID: t.ID, Primary: t.ID, Secondary: t.Title}
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cat, err := catalog.New(entries)
	if err != nil {
		return err
	}
	res, err := selector.Select(cat, selector.Options{
		Query:  query,
		Finder: cfg.Finder,
		Header: "Select a docs topic",
	})
	if err != nil {
		return err
	}
	if !res.Resolved() {
		return nil
	}
	return renderTopic(cmd, byID[res.Entry.ID])
}

func renderTopic(cmd *cobra.Command, t docs.Topic) error {
	source, err := docs.Read(t.Path)
	if err != nil {
		return err
	}

	display := ui.NewDisplayContext()
	if docsPlain || !display.IsTTY {
		fmt.Fprint(cmd.OutOrStdout(), string(source))
		return nil
	}

	rendered, err := ui.RenderMarkdown(string(source), display.TermWidth)
	if err != nil {
		return fmt.Errorf("render topic %s: %w", t.ID, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func init() {
	docsCmd.Flags().BoolVar(&docsPlain, "plain", false, "print raw markdown without styling")
	rootCmd.AddCommand(docsCmd)
}
