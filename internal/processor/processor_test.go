package processor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ginjaninja78/barcode-processor/internal/config"
	"github.com/ginjaninja78/barcode-processor/internal/literal"
	"github.com/ginjaninja78/barcode-processor/internal/processor"
	"github.com/ginjaninja78/barcode-processor/internal/registry"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
	"github.com/ginjaninja78/barcode-processor/pkg/utils"
)

const transaction = "01232020Jamie\n" +
	"BEVGTTKYGDGJHGTFBNGDVZJGDIPXVS\n" +
	"CANFDNSKAVOUXSCGSYBHQYHNMDQOBL\n" +
	"FRZNQQNPSESCHIMIXOUHNAWLXRZEPT\n" +
	"BEVGZYUFGNIHDCZIPWLZJLPDSGNEAH\n"

func setup(t *testing.T, content string) (*processor.Processor, string) {
	t.Helper()

	workDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(workDir, "data"), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "data", "CustomerG.txt"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	cfg := config.Default()
	cfg.DefaultInput = "CustomerG.txt"
	cfg.ReportDir = filepath.Join(workDir, "reports")

	reg := registry.New(
		literal.Entry{Key: "BEVG", Value: "Beverages"},
		literal.Entry{Key: "CANF", Value: "Canned food"},
		literal.Entry{Key: "FRZN", Value: "Frozen food"},
	)

	fm := utils.NewFileManager(cfg.DataDir, cfg.ReportDir)
	fm.WorkDir = workDir

	return processor.New(cfg, reg, zaptest.NewLogger(t)).WithFileManager(fm), workDir
}

func TestRun_DefaultInput(t *testing.T) {
	p, workDir := setup(t, transaction)

	result, err := p.Run(processor.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.InputPath != filepath.Join(workDir, "data", "CustomerG.txt") {
		t.Errorf("unexpected input path: %s", result.InputPath)
	}
	if result.Report.Summary.TotalItems != 4 || result.Report.Summary.MaxPerCode != 2 {
		t.Errorf("unexpected summary: %+v", result.Report.Summary)
	}
	if result.Stats.RecordsProcessed != 4 || result.Stats.ProductCodes != 3 {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
	if len(result.ReportFiles) != 0 {
		t.Errorf("expected no report files, got %v", result.ReportFiles)
	}
}

func TestRun_WritesReports(t *testing.T) {
	p, workDir := setup(t, transaction)

	result, err := p.Run(processor.Options{ProductCode: "bevg", XLSX: true, XML: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Report.TargetCode != "BEVG" || len(result.Report.Subtypes) != 2 {
		t.Errorf("unexpected subtypes: %s %v", result.Report.TargetCode, result.Report.Subtypes)
	}
	if len(result.ReportFiles) != 2 {
		t.Fatalf("expected 2 report files, got %v", result.ReportFiles)
	}

	for i, ext := range []string{".xlsx", ".xml"} {
		path := result.ReportFiles[i]
		if filepath.Dir(path) != filepath.Join(workDir, "reports") {
			t.Errorf("report outside report dir: %s", path)
		}
		if !strings.HasPrefix(filepath.Base(path), "Jamie_20200123_") || filepath.Ext(path) != ext {
			t.Errorf("unexpected report name: %s", path)
		}
		if !utils.FileExists(path) {
			t.Errorf("report not written: %s", path)
		}
	}
}

func TestRun_InvalidFile(t *testing.T) {
	p, _ := setup(t, "01232020Jamie\nBEVGTTKYGDGJHGTFBNGDVZJGDI\n")

	_, err := p.Run(processor.Options{XML: true})

	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Rule != validation.RuleInvalidBarcodeLength || ve.Line != 2 {
		t.Errorf("unexpected error: %v", ve)
	}
}

func TestRun_MissingFile(t *testing.T) {
	p, _ := setup(t, transaction)

	_, err := p.Run(processor.Options{Filename: "CustomerZ.txt"})

	var nf *validation.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
