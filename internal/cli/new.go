package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowtool/flow/internal/scripts"
	"github.com/flowtool/flow/internal/ui"
)

var newPython bool

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a script skeleton in the scripts directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		root, _, err := scripts.Locate(cfg.ScriptsDir)
		if err != nil {
			return err
		}

		ext := ".sh"
		if newPython {
			ext = ".py"
		}

		script, err := scripts.Create(root, title, ext)
		if err != nil {
			return err
		}

		fmt.Println(ui.Successf("Created %s", ui.FilePath(script.Rel)))
		openInEditorOrPrintPath(cfg, script.Path)
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newPython, "python", false, "create a Python script instead of shell")
	rootCmd.AddCommand(newCmd)
}
