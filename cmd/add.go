// =============================================================================
// Barcode Transaction Processor - Add Command
// =============================================================================
//
// This file defines the 'add' command, which registers a new product code
// in the product store.
//
// COMMAND USAGE:
//   barcodes add --productcode SNCK --description "Snacks"
//
// The code is upper-cased and must be 4 characters and not yet registered.
// On success the whole product store is rewritten.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCode and newDescription are the entry to register.
var (
	newCode        string
	newDescription string
)

// addCmd represents the 'add' command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new product code to the product store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&newCode, "productcode", "p", "",
		"Product code to add (4 characters)")
	addCmd.Flags().StringVarP(&newDescription, "description", "d", "",
		"Description of the product code")
}

// runAdd validates and persists the new entry.
func runAdd(cmd *cobra.Command) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	code, err := reg.Add(newCode, newDescription)
	if err != nil {
		return err
	}

	logger.Info("product code added",
		zap.String("code", code),
		zap.String("store", reg.Path()))

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to product store.\n", code, newDescription)
	return nil
}
