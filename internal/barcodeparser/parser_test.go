package barcodeparser_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/ginjaninja78/barcode-processor/internal/barcodeparser"
	"github.com/ginjaninja78/barcode-processor/internal/literal"
	"github.com/ginjaninja78/barcode-processor/internal/registry"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

func testRegistry() *registry.Registry {
	return registry.New(
		literal.Entry{Key: "BEVG", Value: "Beverages"},
		literal.Entry{Key: "CANF", Value: "Canned food"},
		literal.Entry{Key: "FRZN", Value: "Frozen food"},
	)
}

var customerG = []string{
	"01232020Jamie",
	"BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS",
	"CANFDNSKAVOUXSCGSYBHQYHNMDQOBL",
	"FRZNQQNPSESCHIMIXOUHNAWLXRZEPT",
	"BEVGZYUFGNIHDCZIPWLZJLPDSGNEAH",
}

func TestProcess_Transaction(t *testing.T) {
	result, err := barcodeparser.Process(barcodeparser.FromLines(customerG), testRegistry(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Header.CustomerName != "Jamie" {
		t.Errorf("expected 'Jamie', got '%s'", result.Header.CustomerName)
	}
	want := time.Date(2020, 1, 23, 0, 0, 0, 0, time.UTC)
	if !result.Header.PurchaseDate.Equal(want) {
		t.Errorf("expected %s, got %s", want, result.Header.PurchaseDate)
	}
	if result.Records != 4 {
		t.Errorf("expected 4 records, got %d", result.Records)
	}

	agg := result.Aggregate
	if !reflect.DeepEqual(agg.Codes(), []string{"BEVG", "CANF", "FRZN"}) {
		t.Errorf("unexpected code order: %v", agg.Codes())
	}
	if !reflect.DeepEqual(agg.Items("BEVG"), []string{"GJHGTFBNGDVZJGDIPXVS", "IHDCZIPWLZJLPDSGNEAH"}) {
		t.Errorf("unexpected BEVG items: %v", agg.Items("BEVG"))
	}
	if result.Subtypes != nil {
		t.Errorf("expected no subtypes, got %v", result.Subtypes)
	}
}

func TestProcess_LeapDay(t *testing.T) {
	lines := []string{"02292020Jamie", "BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS"}

	result, err := barcodeparser.Process(barcodeparser.FromLines(lines), testRegistry(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Header.PurchaseDate.Format("2006-01-02"); got != "2020-02-29" {
		t.Errorf("expected 2020-02-29, got %s", got)
	}
	if result.Aggregate.Count("BEVG") != 1 {
		t.Errorf("expected 1 item, got %d", result.Aggregate.Count("BEVG"))
	}
}

func TestProcess_Subtypes(t *testing.T) {
	result, err := barcodeparser.Process(barcodeparser.FromLines(customerG), testRegistry(), "bevg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Subtypes, []string{"TTKYGD", "ZYUFGN"}) {
		t.Errorf("unexpected subtypes: %v", result.Subtypes)
	}
}

func TestProcess_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		rule  string
		line  int
	}{
		{
			name:  "invalid day",
			lines: []string{"01332020Jamie", "BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS"},
			rule:  validation.RuleInvalidDate,
			line:  1,
		},
		{
			name:  "empty file",
			lines: nil,
			rule:  validation.RuleInvalidDate,
			line:  1,
		},
		{
			name:  "short barcode",
			lines: []string{"01232020Jamie", "BEVGTTKYGDGJHGTFBNGDVZJGDIPX"[:26]},
			rule:  validation.RuleInvalidBarcodeLength,
			line:  2,
		},
		{
			name:  "blank line",
			lines: []string{"01232020Jamie", "BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS", ""},
			rule:  validation.RuleInvalidBarcodeLength,
			line:  3,
		},
		{
			name:  "unknown product code",
			lines: []string{"01232020Jamie", "BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS", "XXXXTTKYGDGJHGTFBNGDVZJGDIPXVS"},
			rule:  validation.RuleInvalidProductCode,
			line:  3,
		},
		{
			name:  "lower case product code",
			lines: []string{"01232020Jamie", "bevgTTKYGDGJHGTFBNGDVZJGDIPXVS"},
			rule:  validation.RuleInvalidProductCode,
			line:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := barcodeparser.Process(barcodeparser.FromLines(tt.lines), testRegistry(), "")

			var ve *validation.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Rule != tt.rule {
				t.Errorf("expected rule %q, got %q", tt.rule, ve.Rule)
			}
			if ve.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, ve.Line)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	header, err := barcodeparser.ParseHeader("12252021Zoë Ångström")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header.CustomerName != "Zoë Ångström" {
		t.Errorf("unexpected name: %s", header.CustomerName)
	}

	header, err = barcodeparser.ParseHeader("12252021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header.CustomerName != "" {
		t.Errorf("expected empty name, got '%s'", header.CustomerName)
	}

	if _, err := barcodeparser.ParseHeader("1225"); !validation.HasRule(err, validation.RuleInvalidDate) {
		t.Errorf("expected invalid date, got %v", err)
	}
}

func TestParseRecord(t *testing.T) {
	record, err := barcodeparser.ParseRecord("CANFDNSKAVOUXSCGSYBHQYHNMDQOBL", testRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ProductCode != "CANF" || record.Subtype != "DNSKAV" || record.ItemID != "OUXSCGSYBHQYHNMDQOBL" {
		t.Errorf("unexpected record: %+v", record)
	}

	_, err = barcodeparser.ParseRecord("CANFDNSKAVOUXSCGSYBHQYHNMDQOBLX", testRegistry())
	if !validation.HasRule(err, validation.RuleInvalidBarcodeLength) {
		t.Errorf("expected invalid barcode length, got %v", err)
	}
}

func TestCount(t *testing.T) {
	header, count, err := barcodeparser.Count(barcodeparser.FromLines(customerG), testRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header.CustomerName != "Jamie" || count != 4 {
		t.Errorf("expected Jamie with 4 items, got %s with %d", header.CustomerName, count)
	}

	lines := append(append([]string{}, customerG...), "XXXXTTKYGDGJHGTFBNGDVZJGDIPXVS")
	if _, _, err := barcodeparser.Count(barcodeparser.FromLines(lines), testRegistry()); !validation.HasRule(err, validation.RuleInvalidProductCode) {
		t.Errorf("expected invalid product code, got %v", err)
	}
}

func TestScanner_CRLFAndBOM(t *testing.T) {
	input := "\xef\xbb\xbf" + strings.Join(customerG, "\r\n") + "\r\n"

	src, err := barcodeparser.NewScanner(strings.NewReader(input), "UTF-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := barcodeparser.Process(src, testRegistry(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Header.CustomerName != "Jamie" || result.Records != 4 {
		t.Errorf("unexpected result: %s, %d records", result.Header.CustomerName, result.Records)
	}
}

func TestScanner_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("01232020José\nBEVGTTKYGDGJHGTFBNGDVZJGDIPXVS\n")
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	src, err := barcodeparser.NewScanner(bytes.NewReader([]byte(encoded)), "ISO-8859-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := barcodeparser.Process(src, testRegistry(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Header.CustomerName != "José" {
		t.Errorf("expected 'José', got '%s'", result.Header.CustomerName)
	}
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "Shift_JIS", "latin1", "windows-1252", "euc-kr"} {
		if _, err := barcodeparser.LookupEncoding(name); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}

	if _, err := barcodeparser.LookupEncoding("klingon"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestScanner_LongHeaderAndNoTrailingNewline(t *testing.T) {
	name := strings.Repeat("J", 2*1024*1024)
	input := "01232020" + name + "\nBEVGTTKYGDGJHGTFBNGDVZJGDIPXVS"

	src, err := barcodeparser.NewScanner(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := barcodeparser.Process(src, testRegistry(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Header.CustomerName != name {
		t.Errorf("expected a %d-character name, got %d", len(name), len(result.Header.CustomerName))
	}
	if result.Records != 1 {
		t.Errorf("expected 1 record, got %d", result.Records)
	}
}
