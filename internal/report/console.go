// =============================================================================
// Barcode Transaction Processor - Console Report
// =============================================================================
//
// Prints the purchase summary in the wording of the original till tooling,
// with Python-style list literals for codes, item IDs and subtypes.
//
// =============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/barcode-processor/internal/literal"
)

// ConsoleOptions selects the optional parts of the console summary.
type ConsoleOptions struct {
	// ShowItemIDs prints each product code's count and raw item identifiers.
	ShowItemIDs bool
}

// WriteConsole prints the plain text summary of a processed file.
func WriteConsole(w io.Writer, r *Report, options ConsoleOptions) error {
	ew := &errWriter{w: w}

	ew.printf("Customer Name: %s\n", r.Header.CustomerName)
	ew.printf("Purchase Date: %s\n", r.PurchaseDate())
	ew.printf("Number of items purchased: %d\n", r.Summary.TotalItems)

	if options.ShowItemIDs {
		for _, code := range r.Aggregate.Codes() {
			ew.printf("Item code %s: purchased %d item(s)(%s)\n",
				code, r.Aggregate.Count(code), literal.FormatList(r.Aggregate.Items(code)))
		}
	}

	ew.printf("The most common product type(s) is(are): %s with %d items in the purchase\n",
		literal.FormatList(r.Summary.MostCommonCodes), r.Summary.MaxPerCode)

	if r.TargetCode != "" {
		ew.printf("Subtype(s) for %s: %s\n", r.TargetCode, literal.FormatList(r.Subtypes))
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
