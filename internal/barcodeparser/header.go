// =============================================================================
// Barcode Transaction Processor - Header Parser
// =============================================================================
//
// Parses the first line of a transaction file: an MMDDYYYY purchase date
// followed by the customer name.
//
// =============================================================================

package barcodeparser

import (
	"github.com/ginjaninja78/barcode-processor/internal/types"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

// ParseHeader parses the first line of a transaction file.
//
// The first 8 characters are the MMDDYYYY purchase date; everything after
// them is the customer name, taken verbatim. The line is expected to be
// stripped already.
//
// RETURNS:
//   - The header.
//   - A *validation.ValidationError with RuleInvalidDate if the date token
//     is not a real calendar date.
func ParseHeader(line string) (types.TransactionHeader, error) {
	chars := []rune(line)

	split := types.DateTokenLength
	if len(chars) < split {
		split = len(chars)
	}

	date, err := validation.ValidateDate(string(chars[:split]))
	if err != nil {
		return types.TransactionHeader{}, err
	}

	return types.TransactionHeader{
		CustomerName: string(chars[split:]),
		PurchaseDate: date,
	}, nil
}
