// =============================================================================
// Barcode Transaction Processor - Registry Workbook Import
// =============================================================================
//
// Product codes can be registered in bulk from an XLSX workbook. Each data
// row goes through Registry.Add, so every row obeys the same rules as the
// `add` command and the store is rewritten after each accepted row.
//
// WORKBOOK LAYOUT (default columns):
//
//   | Column A     | Column B              |
//   |--------------|-----------------------|
//   | Product Code | Description           |
//   | BEVG         | Beverages             |
//   | CANF         | Canned food           |
//
// =============================================================================

package registry

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/barcode-processor/internal/literal"
)

// =============================================================================
// COLUMN CONFIGURATION
// =============================================================================

// ImportColumns defines where the workbook keeps codes and descriptions.
// Column and row indices are 0-based (A=0, B=1).
type ImportColumns struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string

	// CodeColumn is the column containing the product code.
	CodeColumn int

	// DescriptionColumn is the column containing the description.
	DescriptionColumn int

	// DataStartRow is the first row holding data. Rows above it are headers.
	DataStartRow int
}

// DefaultImportColumns returns the default layout: codes in A, descriptions
// in B, one header row.
func DefaultImportColumns() ImportColumns {
	return ImportColumns{
		CodeColumn:        0,
		DescriptionColumn: 1,
		DataStartRow:      1,
	}
}

// =============================================================================
// READING
// =============================================================================

// ReadWorkbook extracts code/description pairs from an XLSX file.
// Blank rows are skipped. Values are trimmed but not otherwise normalized.
//
// RETURNS:
//   - The entries in row order.
//   - An error if the file or sheet cannot be read.
func ReadWorkbook(path string, columns ImportColumns) ([]literal.Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := columns.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	start := columns.DataStartRow
	if start < 0 {
		start = 0
	}

	var entries []literal.Entry
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		entries = append(entries, literal.Entry{
			Key:   cell(row, columns.CodeColumn),
			Value: cell(row, columns.DescriptionColumn),
		})
	}

	return entries, nil
}

// =============================================================================
// IMPORT
// =============================================================================

// ImportResult reports what an import added.
type ImportResult struct {
	// Added lists the canonical codes registered, in row order.
	Added []string

	// Rows is the number of data rows read from the workbook.
	Rows int
}

// ImportWorkbook reads a workbook and adds every row to the registry.
//
// RETURNS:
//   - The import result. On failure it lists the rows added before the
//     failing one; those rows are already persisted.
//   - The first Add error, annotated with the workbook row.
func (r *Registry) ImportWorkbook(path string, columns ImportColumns) (ImportResult, error) {
	entries, err := ReadWorkbook(path, columns)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Rows: len(entries)}
	for i, e := range entries {
		code, err := r.Add(e.Key, e.Value)
		if err != nil {
			return result, fmt.Errorf("entry %d (%q): %w", i+1, e.Key, err)
		}
		result.Added = append(result.Added, code)
	}

	return result, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cell safely returns a trimmed cell value.
func cell(row []string, index int) string {
	if index >= 0 && index < len(row) {
		return strings.TrimSpace(row[index])
	}
	return ""
}
