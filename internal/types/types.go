// =============================================================================
// Barcode Transaction Processor - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - barcodeparser
//   - summary
//   - report
//
// =============================================================================

package types

import "time"

// =============================================================================
// FIELD WIDTHS
// =============================================================================

// Fixed-width layout of a barcode record line.
//
//	| 0..3 code | 4..9 subtype | 10..29 item id |
const (
	CodeStart    = 0
	CodeEnd      = 4
	SubtypeStart = CodeEnd
	SubtypeEnd   = 10
	ItemIDStart  = SubtypeEnd
	ItemIDEnd    = 30

	// RecordLength is the exact length of every line after the header.
	RecordLength = ItemIDEnd

	// CodeLength is the length of a product code.
	CodeLength = CodeEnd - CodeStart

	// DateTokenLength is the length of the MMDDYYYY date prefix of the header.
	DateTokenLength = 8
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// TransactionHeader is the first line of a transaction file.
type TransactionHeader struct {
	// CustomerName is everything after the date token, verbatim.
	CustomerName string

	// PurchaseDate is the calendar date encoded as MMDDYYYY.
	// Only the year, month and day are meaningful; the time is midnight UTC.
	PurchaseDate time.Time
}

// BarcodeRecord is one fixed-width purchase line.
type BarcodeRecord struct {
	// ProductCode is the registered 4-character product code.
	ProductCode string

	// Subtype is the 6-character subtype field.
	Subtype string

	// ItemID is the 20-character unique item identifier.
	ItemID string
}

// =============================================================================
// SHOPPING AGGREGATE
// =============================================================================

// ShoppingAggregate groups item identifiers by product code.
// Codes keep the order of their first occurrence, item identifiers keep
// input order and duplicates are preserved.
type ShoppingAggregate struct {
	order []string
	items map[string][]string
}

// NewShoppingAggregate returns an empty aggregate.
func NewShoppingAggregate() *ShoppingAggregate {
	return &ShoppingAggregate{
		items: make(map[string][]string),
	}
}

// Append records one item identifier under its product code, creating the
// code's list on first occurrence.
func (a *ShoppingAggregate) Append(code, itemID string) {
	if _, exists := a.items[code]; !exists {
		a.order = append(a.order, code)
	}
	a.items[code] = append(a.items[code], itemID)
}

// Codes returns the product codes in order of first occurrence.
func (a *ShoppingAggregate) Codes() []string {
	codes := make([]string, len(a.order))
	copy(codes, a.order)
	return codes
}

// Items returns the item identifiers recorded for a code.
func (a *ShoppingAggregate) Items(code string) []string {
	return a.items[code]
}

// Count returns the number of items recorded for a code.
func (a *ShoppingAggregate) Count(code string) int {
	return len(a.items[code])
}

// Len returns the number of distinct product codes.
func (a *ShoppingAggregate) Len() int {
	return len(a.order)
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary is the reduction of a ShoppingAggregate.
type Summary struct {
	// TotalItems is the number of records across all codes.
	TotalItems int

	// MaxPerCode is the largest number of items recorded for a single code.
	// It is 0 when the aggregate is empty.
	MaxPerCode int

	// MostCommonCodes lists every code whose count equals MaxPerCode,
	// in the aggregate's insertion order.
	MostCommonCodes []string
}
