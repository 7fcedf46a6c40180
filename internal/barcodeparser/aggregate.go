// =============================================================================
// Barcode Transaction Processor - File Aggregator
// =============================================================================
//
// Reads a whole transaction file, groups item IDs by product code and
// optionally collects the subtypes of one product code. The first invalid
// line aborts the file.
//
// =============================================================================

package barcodeparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/barcode-processor/internal/types"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

// Result is the outcome of aggregating one transaction file.
type Result struct {
	Header types.TransactionHeader

	// Aggregate groups item identifiers by product code.
	Aggregate *types.ShoppingAggregate

	// Subtypes holds the subtypes of records matching the target code, in
	// input order. It is empty when no target code was given.
	Subtypes []string

	// Records is the number of barcode lines read after the header.
	Records int
}

// Process reads a header line followed by barcode records and groups the
// item identifiers by product code.
//
// PARAMETERS:
//   - src: The input lines. The first line is always the header.
//   - codes: The product registry used to validate record codes.
//   - target: Optional product code whose subtypes are collected. It is
//     upper-cased before comparison. Empty disables subtype collection.
//
// RETURNS:
//   - The result.
//   - The first header or record failure; no partial result is returned.
func Process(src LineSource, codes CodeSet, target string) (*Result, error) {
	header, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	target = strings.ToUpper(target)
	result := &Result{
		Header:    header,
		Aggregate: types.NewShoppingAggregate(),
	}

	for src.Next() {
		record, err := ParseRecord(src.Text(), codes)
		if err != nil {
			return nil, atLine(err, src.LineNumber())
		}

		result.Records++
		result.Aggregate.Append(record.ProductCode, record.ItemID)

		if target != "" && target == record.ProductCode {
			result.Subtypes = append(result.Subtypes, record.Subtype)
		}
	}

	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return result, nil
}

// Count validates a transaction file the same way Process does but only
// counts its records.
//
// RETURNS:
//   - The header and the number of barcode records.
//   - The first header or record failure.
func Count(src LineSource, codes CodeSet) (types.TransactionHeader, int, error) {
	header, err := readHeader(src)
	if err != nil {
		return types.TransactionHeader{}, 0, err
	}

	count := 0
	for src.Next() {
		if _, err := ParseRecord(src.Text(), codes); err != nil {
			return types.TransactionHeader{}, 0, atLine(err, src.LineNumber())
		}
		count++
	}

	if err := src.Err(); err != nil {
		return types.TransactionHeader{}, 0, fmt.Errorf("failed to read input: %w", err)
	}

	return header, count, nil
}

// readHeader parses the first line. Empty input is an invalid date.
func readHeader(src LineSource) (types.TransactionHeader, error) {
	line := ""
	if src.Next() {
		line = src.Text()
	} else if err := src.Err(); err != nil {
		return types.TransactionHeader{}, fmt.Errorf("failed to read input: %w", err)
	}

	header, err := ParseHeader(line)
	if err != nil {
		return types.TransactionHeader{}, atLine(err, 1)
	}
	return header, nil
}

// atLine records the input line on a validation error.
func atLine(err error, line int) error {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		ve.Line = line
	}
	return err
}
