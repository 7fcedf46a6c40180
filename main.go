// =============================================================================
// Barcode Transaction Processor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Barcode Transaction Processor CLI.
// It delegates command execution to the cmd package.
//
// USAGE:
//   barcodes process       - Summarize a transaction file
//   barcodes add           - Register a new product code
//   barcodes list          - List registered product codes
//   barcodes import        - Register product codes from an XLSX workbook
//   barcodes version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core parsing, registry and reporting logic
//   - pkg/           : Shared utilities
//   - data/          : Product store and sample transaction files
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/barcode-processor/cmd"
)

func main() {
	cmd.Execute()
}
