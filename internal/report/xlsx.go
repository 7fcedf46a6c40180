// =============================================================================
// Barcode Transaction Processor - XLSX Report
// =============================================================================
//
// WORKBOOK LAYOUT:
//
//   Summary sheet
//   | Customer Name | Jamie      |
//   | Purchase Date | 2020-01-23 |
//   | Total Items   | 4          |
//   | Max Per Code  | 2          |
//   | Most Common   | BEVG       |
//   | Subtypes For  | BEVG       |   (only with a target code)
//   | Subtypes      | TTKYGD, …  |
//
//   Items sheet
//   | Product Code | Description | Count | Item ID |
//   one row per purchased item, grouped by product code
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	itemsSheet   = "Items"
)

// GenerateXLSX builds the workbook for a report.
// The caller owns the returned file and must close it.
func GenerateXLSX(r *Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeSummarySheet(f, r); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeItemsSheet(f, r); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteXLSX builds the workbook and saves it to path.
func WriteXLSX(r *Report, path string) error {
	f, err := GenerateXLSX(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *Report) error {
	rows := [][]any{
		{"Customer Name", r.Header.CustomerName},
		{"Purchase Date", r.PurchaseDate()},
		{"Total Items", r.Summary.TotalItems},
		{"Max Per Code", r.Summary.MaxPerCode},
		{"Most Common", strings.Join(r.Summary.MostCommonCodes, ", ")},
	}
	if r.TargetCode != "" {
		rows = append(rows,
			[]any{"Subtypes For", r.TargetCode},
			[]any{"Subtypes", strings.Join(r.Subtypes, ", ")},
		)
	}

	return writeRows(f, summarySheet, rows)
}

func writeItemsSheet(f *excelize.File, r *Report) error {
	rows := [][]any{
		{"Product Code", "Description", "Count", "Item ID"},
	}
	for _, code := range r.Aggregate.Codes() {
		description := r.Description(code)
		count := r.Aggregate.Count(code)
		for _, id := range r.Aggregate.Items(code) {
			rows = append(rows, []any{code, description, count, id})
		}
	}

	return writeRows(f, itemsSheet, rows)
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
