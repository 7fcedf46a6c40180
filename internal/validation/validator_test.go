package validation_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

func TestValidateDate_Valid(t *testing.T) {
	tests := []struct {
		token string
		want  time.Time
	}{
		{"01232020", time.Date(2020, 1, 23, 0, 0, 0, 0, time.UTC)},
		{"02292020", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"02292000", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"02291600", time.Date(1600, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"02282019", time.Date(2019, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"12312099", time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"04302021", time.Date(2021, 4, 30, 0, 0, 0, 0, time.UTC)},
		{"01010001", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := validation.ValidateDate(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestValidateDate_Invalid(t *testing.T) {
	tokens := []string{
		"01332020", // day 33
		"02292019", // not a leap year
		"02291900", // century not divisible by 400
		"02290100",
		"02302020",
		"04312021",
		"13012020",
		"00012020",
		"01002020",
		"01010000", // year 0
		"0123202",
		"012320201",
		"01-23-20",
		"0123202a",
		" 1232020",
		"",
	}

	for _, token := range tokens {
		t.Run(fmt.Sprintf("%q", token), func(t *testing.T) {
			_, err := validation.ValidateDate(token)
			if err == nil {
				t.Fatal("expected error")
			}
			if !validation.HasRule(err, validation.RuleInvalidDate) {
				t.Errorf("expected %q, got %v", validation.RuleInvalidDate, err)
			}
		})
	}
}

func TestValidateDate_LeapRule(t *testing.T) {
	isLeap := func(y int) bool {
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	}

	for year := 1; year <= 9999; year++ {
		token := fmt.Sprintf("0229%04d", year)
		_, err := validation.ValidateDate(token)
		if isLeap(year) && err != nil {
			t.Fatalf("%s: expected valid leap day, got %v", token, err)
		}
		if !isLeap(year) && err == nil {
			t.Fatalf("%s: expected invalid date", token)
		}
	}
}

func TestNormalizeProductCode(t *testing.T) {
	code, err := validation.NormalizeProductCode("bevg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "BEVG" {
		t.Errorf("expected 'BEVG', got '%s'", code)
	}

	if _, err := validation.NormalizeProductCode(""); !validation.HasRule(err, validation.RuleMissingCode) {
		t.Errorf("expected %q, got %v", validation.RuleMissingCode, err)
	}
	if _, err := validation.NormalizeProductCode("AB"); !validation.HasRule(err, validation.RuleInvalidLength) {
		t.Errorf("expected %q, got %v", validation.RuleInvalidLength, err)
	}
	if _, err := validation.NormalizeProductCode("ABCDE"); !validation.HasRule(err, validation.RuleInvalidLength) {
		t.Errorf("expected %q, got %v", validation.RuleInvalidLength, err)
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	ve := validation.NewValidationError(validation.RuleDuplicate, "product code", "BEVG", "Duplicate product code BEVG")
	ve.Line = 3
	err := fmt.Errorf("failed to add: %w", ve)

	if !validation.HasRule(err, validation.RuleDuplicate) {
		t.Fatal("expected wrapped duplicate rule")
	}

	var got *validation.ValidationError
	if !errors.As(err, &got) {
		t.Fatal("expected errors.As to find ValidationError")
	}
	if got.Error() != "duplicate: Duplicate product code BEVG (line 3)" {
		t.Errorf("unexpected message: %s", got.Error())
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("bad literal")
	err := &validation.ParseError{Source: "products.txt", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected ParseError to unwrap its cause")
	}
	if err.Error() != "failed to parse products.txt: bad literal" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
