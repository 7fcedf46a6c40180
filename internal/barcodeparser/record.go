// =============================================================================
// Barcode Transaction Processor - Record Parser
// =============================================================================
//
// Parses one fixed-width barcode line:
//
//   | 0-3 product code | 4-9 subtype | 10-29 item ID |
//
// The product code must be registered; it is compared as-is.
//
// =============================================================================

package barcodeparser

import (
	"fmt"

	"github.com/ginjaninja78/barcode-processor/internal/types"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

// CodeSet is the view of the product registry that record parsing needs.
type CodeSet interface {
	Contains(code string) bool
}

// ParseRecord splits one stripped barcode line into its fixed fields.
//
// RETURNS:
//   - The record.
//   - RuleInvalidBarcodeLength if the line is not exactly 30 characters.
//   - RuleInvalidProductCode if the first 4 characters are not a registered
//     code. Codes are compared as-is, without case folding.
func ParseRecord(line string, codes CodeSet) (types.BarcodeRecord, error) {
	chars := []rune(line)
	if len(chars) != types.RecordLength {
		return types.BarcodeRecord{}, validation.NewValidationError(
			validation.RuleInvalidBarcodeLength, "barcode", line,
			fmt.Sprintf("Invalid barcode length %d, expected %d: %s", len(chars), types.RecordLength, line))
	}

	record := types.BarcodeRecord{
		ProductCode: string(chars[types.CodeStart:types.CodeEnd]),
		Subtype:     string(chars[types.SubtypeStart:types.SubtypeEnd]),
		ItemID:      string(chars[types.ItemIDStart:types.ItemIDEnd]),
	}

	if !codes.Contains(record.ProductCode) {
		return types.BarcodeRecord{}, validation.NewValidationError(
			validation.RuleInvalidProductCode, "product code", record.ProductCode,
			fmt.Sprintf("Invalid product code %s", record.ProductCode))
	}

	return record, nil
}
