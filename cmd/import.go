// =============================================================================
// Barcode Transaction Processor - Import Command
// =============================================================================
//
// This file defines the 'import' command, which registers product codes in
// bulk from an XLSX workbook.
//
// COMMAND USAGE:
//   barcodes import --file products.xlsx [--sheet Products]
//
// Every row is added exactly like `barcodes add`. The first invalid or
// duplicate row stops the import; rows before it stay registered.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/barcode-processor/internal/registry"
)

var (
	// workbookPath is the XLSX file to import.
	workbookPath string

	// workbookSheet is the sheet to read; empty means the first sheet.
	workbookSheet string

	// headerRows is the number of rows to skip before the data.
	headerRows int
)

// importCmd represents the 'import' command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Add product codes from an XLSX workbook",
	Long: `The import command reads product codes from column A and descriptions
from column B of a workbook and adds each of them to the product store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&workbookPath, "file", "", "XLSX workbook to import")
	importCmd.Flags().StringVar(&workbookSheet, "sheet", "", "Sheet to read (default: first sheet)")
	importCmd.Flags().IntVar(&headerRows, "header-rows", 1, "Number of header rows to skip")
	importCmd.MarkFlagRequired("file")
}

// runImport adds every workbook row to the registry.
func runImport(cmd *cobra.Command) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	columns := registry.DefaultImportColumns()
	columns.Sheet = workbookSheet
	columns.DataStartRow = headerRows

	result, err := reg.ImportWorkbook(workbookPath, columns)

	out := cmd.OutOrStdout()
	for _, code := range result.Added {
		description, _ := reg.Lookup(code)
		fmt.Fprintf(out, "Added %s (%s) to product store.\n", code, description)
	}

	if err != nil {
		logger.Warn("import stopped",
			zap.String("workbook", workbookPath),
			zap.Int("added", len(result.Added)),
			zap.Error(err))
		return fmt.Errorf("failed to import %s: %w", workbookPath, err)
	}

	logger.Info("workbook imported",
		zap.String("workbook", workbookPath),
		zap.Int("rows", result.Rows),
		zap.Int("added", len(result.Added)))

	fmt.Fprintf(out, "Imported %d product code(s).\n", len(result.Added))
	return nil
}
