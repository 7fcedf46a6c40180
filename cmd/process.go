// =============================================================================
// Barcode Transaction Processor - Process Command
// =============================================================================
//
// This file defines the 'process' command, which summarizes one
// transaction file.
//
// COMMAND USAGE:
//   barcodes process [flags]
//
// FLAGS:
//   --filename, -f    : Input file (default from config: data/CustomerG.txt)
//   --productcode, -p : Collect the subtypes of this product code
//   --uniqueids, -i   : Print per-code counts and item IDs
//   --xlsx            : Also write an XLSX report
//   --xml             : Also write an XML report
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/barcode-processor/internal/processor"
	"github.com/ginjaninja78/barcode-processor/internal/report"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputFile is the transaction file to process.
var inputFile string

// subtypeCode selects the product code whose subtypes are listed.
var subtypeCode string

// uniqueIDs prints the per-code breakdown with item IDs.
var uniqueIDs bool

// writeXLSX and writeXML enable the file reports.
var (
	writeXLSX bool
	writeXML  bool
)

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a transaction file generated by a sale",
	Long: `The process command reads a transaction file, validates its header and
every barcode line, and prints the customer name, purchase date, number of
items and the most common product code(s).

Any invalid line (bad date, wrong barcode length, unknown product code)
rejects the whole file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&inputFile, "filename", "f", "",
		"Transaction file to process (default from config)")
	processCmd.Flags().StringVarP(&subtypeCode, "productcode", "p", "",
		"List the subtypes purchased for this product code")
	processCmd.Flags().BoolVarP(&uniqueIDs, "uniqueids", "i", false,
		"Print each product code's count and item IDs")
	processCmd.Flags().BoolVar(&writeXLSX, "xlsx", false,
		"Write an XLSX report to the report directory")
	processCmd.Flags().BoolVar(&writeXML, "xml", false,
		"Write an XML report to the report directory")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess loads the registry, processes the file and prints the summary.
func runProcess(cmd *cobra.Command) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	result, err := processor.New(appConfig, reg, logger).Run(processor.Options{
		Filename:    inputFile,
		ProductCode: subtypeCode,
		XLSX:        writeXLSX,
		XML:         writeXML,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.WriteConsole(out, result.Report, report.ConsoleOptions{ShowItemIDs: uniqueIDs}); err != nil {
		return err
	}

	for _, path := range result.ReportFiles {
		fmt.Fprintf(out, "Report written to %s\n", path)
	}

	return nil
}
