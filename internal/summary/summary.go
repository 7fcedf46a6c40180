// =============================================================================
// Barcode Transaction Processor - Summary Reducer
// =============================================================================

// Package summary reduces a shopping aggregate to its headline numbers.
package summary

import "github.com/ginjaninja78/barcode-processor/internal/types"

// Reduce computes the total item count, the largest per-code count and the
// codes that reach it. Ties keep the aggregate's insertion order.
func Reduce(agg *types.ShoppingAggregate) types.Summary {
	var s types.Summary
	if agg == nil {
		return s
	}

	codes := agg.Codes()
	for _, code := range codes {
		n := agg.Count(code)
		s.TotalItems += n
		if n > s.MaxPerCode {
			s.MaxPerCode = n
		}
	}

	for _, code := range codes {
		if s.MaxPerCode > 0 && agg.Count(code) == s.MaxPerCode {
			s.MostCommonCodes = append(s.MostCommonCodes, code)
		}
	}

	return s
}
