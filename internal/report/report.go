// =============================================================================
// Barcode Transaction Processor - Reports
// =============================================================================
//
// This package renders a processed transaction file. Three renderers share
// the same Report value:
//   - console.go : the plain text summary printed by `process`
//   - xlsx.go    : a workbook with Summary and Items sheets
//   - xml.go     : an XML purchase document
//
// =============================================================================

package report

import (
	"github.com/ginjaninja78/barcode-processor/internal/barcodeparser"
	"github.com/ginjaninja78/barcode-processor/internal/summary"
	"github.com/ginjaninja78/barcode-processor/internal/types"
)

// DateLayout is how purchase dates are rendered.
const DateLayout = "2006-01-02"

// Describer returns the registry description of a product code.
type Describer interface {
	Lookup(code string) (string, bool)
}

// Report is everything the renderers need about one processed file.
type Report struct {
	Header    types.TransactionHeader
	Aggregate *types.ShoppingAggregate
	Summary   types.Summary

	// TargetCode is the upper-cased subtype filter, or "" when none was given.
	TargetCode string
	Subtypes   []string

	// Descriptions resolves product codes. It may be nil.
	Descriptions Describer
}

// New builds a report from a parse result.
func New(result *barcodeparser.Result, targetCode string, descriptions Describer) *Report {
	return &Report{
		Header:       result.Header,
		Aggregate:    result.Aggregate,
		Summary:      summary.Reduce(result.Aggregate),
		TargetCode:   targetCode,
		Subtypes:     result.Subtypes,
		Descriptions: descriptions,
	}
}

// Description returns the description for code, or "" if unknown.
func (r *Report) Description(code string) string {
	if r.Descriptions == nil {
		return ""
	}
	d, _ := r.Descriptions.Lookup(code)
	return d
}

// IsMostCommon reports whether code is among the most common codes.
func (r *Report) IsMostCommon(code string) bool {
	for _, c := range r.Summary.MostCommonCodes {
		if c == code {
			return true
		}
	}
	return false
}

// PurchaseDate returns the formatted purchase date.
func (r *Report) PurchaseDate() string {
	return r.Header.PurchaseDate.Format(DateLayout)
}
