// =============================================================================
// Barcode Transaction Processor - List Command
// =============================================================================
//
// COMMAND USAGE:
//   barcodes list
//
// Prints every registered product code and its description in store order.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered product codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range reg.Entries() {
			fmt.Fprintf(out, "%s  %s\n", e.Key, e.Value)
		}
		fmt.Fprintf(out, "%d product code(s)\n", reg.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
