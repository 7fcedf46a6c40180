// =============================================================================
// Barcode Transaction Processor - Validation
// =============================================================================
//
// This module defines the error kinds shared by every layer and the field
// validators used while reading transaction files and registry input:
//   - ValidationError : a value broke a rule (date, barcode, product code)
//   - ParseError      : a persisted store could not be decoded
//   - NotFoundError   : an input file could not be located
//
// ERROR HANDLING:
//   - Errors are returned, never logged or printed from here
//   - The first failure wins; callers do not collect or recover
//   - Rule strings are stable and intended for errors.As matching in callers
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/barcode-processor/internal/types"
)

// =============================================================================
// RULES
// =============================================================================

// Rule names carried by ValidationError.
const (
	RuleInvalidDate          = "invalid date"
	RuleInvalidBarcodeLength = "invalid barcode length"
	RuleInvalidProductCode   = "invalid product code"
	RuleMissingCode          = "missing code"
	RuleInvalidLength        = "invalid length"
	RuleDuplicate            = "duplicate"
	RuleMissingDescription   = "missing description"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError represents a value that failed a validation rule.
type ValidationError struct {
	// Rule is one of the Rule* constants.
	Rule string

	// Field names the offending field (e.g. "date", "barcode", "product code").
	Field string

	// Value is the rejected value.
	Value string

	// Line is the 1-based input line number, or 0 when not applicable.
	Line int

	// Message is a human-readable explanation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Rule)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	return b.String()
}

// NewValidationError creates a ValidationError for a rule and value.
func NewValidationError(rule, field, value, message string) *ValidationError {
	return &ValidationError{
		Rule:    rule,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// HasRule reports whether err wraps a ValidationError with the given rule.
func HasRule(err error, rule string) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Rule == rule
	}
	return false
}

// =============================================================================
// PARSE ERROR
// =============================================================================

// ParseError reports a malformed persisted store.
type ParseError struct {
	// Source is the path or name of the store.
	Source string

	// Err is the underlying decoding failure.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// NOT FOUND ERROR
// =============================================================================

// NotFoundError reports an input file that no resolution rule could locate.
type NotFoundError struct {
	// Path is the path as supplied by the user.
	Path string

	// Tried lists every candidate that was checked, in order.
	Tried []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s (tried %s)", e.Path, strings.Join(e.Tried, ", "))
}

// =============================================================================
// DATE VALIDATION
// =============================================================================

// ValidateDate parses an 8-character MMDDYYYY token.
//
// PARAMETERS:
//   - token: The first 8 characters of the header line.
//
// RETURNS:
//   - The date at midnight UTC.
//   - A ValidationError with RuleInvalidDate if the token is not 8 ASCII
//     digits forming a real Gregorian calendar date with year >= 1.
//
// The date is built from its parts and must round-trip: time.Date normalizes
// Feb 30 to Mar 1, so any normalization means the token was not a real date.
// Leap years follow the 4/100/400 rule.
func ValidateDate(token string) (time.Time, error) {
	invalid := func() (time.Time, error) {
		return time.Time{}, NewValidationError(RuleInvalidDate, "date", token,
			fmt.Sprintf("Invalid date (mmddyyyy) %s", token))
	}

	if len(token) != types.DateTokenLength || !isDigits(token) {
		return invalid()
	}

	month, _ := strconv.Atoi(token[0:2])
	day, _ := strconv.Atoi(token[2:4])
	year, _ := strconv.Atoi(token[4:8])

	if year < 1 || month < 1 || month > 12 || day < 1 {
		return invalid()
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return invalid()
	}

	return date, nil
}

// =============================================================================
// PRODUCT CODE VALIDATION
// =============================================================================

// NormalizeProductCode validates a code supplied for registration and returns
// its canonical upper-case form.
//
// RETURNS:
//   - RuleMissingCode if code is empty.
//   - RuleInvalidLength if the upper-cased code is not 4 characters.
func NormalizeProductCode(code string) (string, error) {
	if code == "" {
		return "", NewValidationError(RuleMissingCode, "product code", code,
			"No product code specified")
	}

	upper := strings.ToUpper(code)
	if len([]rune(upper)) != types.CodeLength {
		return "", NewValidationError(RuleInvalidLength, "product code", upper,
			fmt.Sprintf("Invalid product code %s (must be %d characters)", upper, types.CodeLength))
	}

	return upper, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isDigits reports whether s consists only of ASCII digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
