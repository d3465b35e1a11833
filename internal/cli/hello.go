package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello [name]",
	Short: "Print a friendly greeting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "world"
		if len(args) > 0 {
			name = args[0]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Hello, %s!\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
