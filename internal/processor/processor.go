// =============================================================================
// Barcode Transaction Processor - Processor Module
// =============================================================================
//
// This module runs the processing pipeline for a single transaction file.
//
// PROCESSING PIPELINE:
//   1. Resolve the input path (as given, working dir, data dir)
//   2. Open the file with the configured encoding
//   3. Parse the header and every barcode record, aggregating by product code
//   4. Reduce the aggregate to a summary
//   5. Write the optional XLSX and XML reports
//
// Any invalid line aborts the whole file; nothing is reported for it.
//
// =============================================================================

package processor

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/barcode-processor/internal/barcodeparser"
	"github.com/ginjaninja78/barcode-processor/internal/config"
	"github.com/ginjaninja78/barcode-processor/internal/registry"
	"github.com/ginjaninja78/barcode-processor/internal/report"
	"github.com/ginjaninja78/barcode-processor/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options selects the file and the optional outputs of a run.
type Options struct {
	// Filename is the input file. Empty means the configured default input.
	Filename string

	// ProductCode, if set, collects the subtypes of this code.
	ProductCode string

	// XLSX writes a workbook report to the report directory.
	XLSX bool

	// XML writes an XML report to the report directory.
	XML bool
}

// Result represents the outcome of processing a single file.
type Result struct {
	// InputPath is the resolved path of the processed file.
	InputPath string

	// Report holds the parsed header, aggregate and summary.
	Report *report.Report

	// ReportFiles lists the report files written, in the order written.
	ReportFiles []string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RecordsProcessed is the number of barcode lines read.
	RecordsProcessed int

	// ProductCodes is the number of distinct product codes seen.
	ProductCodes int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// PROCESSOR STRUCTURE
// =============================================================================

// Processor processes transaction files against a product registry.
type Processor struct {
	cfg      *config.MainConfig
	registry *registry.Registry
	files    *utils.FileManager
	logger   *zap.Logger
}

// New creates a new Processor.
//
// PARAMETERS:
//   - cfg: The main application configuration.
//   - reg: The product registry loaded at startup.
//   - logger: The logger. nil disables logging.
func New(cfg *config.MainConfig, reg *registry.Registry, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		cfg:      cfg,
		registry: reg,
		files:    utils.NewFileManager(cfg.DataDir, cfg.ReportDir),
		logger:   logger,
	}
}

// WithFileManager replaces the file manager, e.g. to resolve paths against
// another working directory.
func (p *Processor) WithFileManager(fm *utils.FileManager) *Processor {
	p.files = fm
	return p
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the processing pipeline for one file.
//
// RETURNS:
//   - The result.
//   - A *validation.NotFoundError if the file cannot be located.
//   - A *validation.ValidationError for the first invalid line.
//   - An I/O error for unreadable input or unwritable reports.
func (p *Processor) Run(opts Options) (*Result, error) {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: RESOLVE INPUT
	// =========================================================================

	filename := opts.Filename
	if filename == "" {
		filename = p.cfg.DefaultInput
	}

	inputPath, err := p.files.ResolveInputPath(filename)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("resolved input file",
		zap.String("requested", filename),
		zap.String("path", inputPath))

	// =========================================================================
	// STEP 2-3: PARSE AND AGGREGATE
	// =========================================================================

	src, err := barcodeparser.OpenFile(inputPath, p.cfg.Encoding)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	parsed, err := barcodeparser.Process(src, p.registry, opts.ProductCode)
	if err != nil {
		p.logger.Warn("transaction file rejected",
			zap.String("path", inputPath),
			zap.Error(err))
		return nil, fmt.Errorf("failed to process %s: %w", inputPath, err)
	}

	// =========================================================================
	// STEP 4: SUMMARIZE
	// =========================================================================

	rep := report.New(parsed, strings.ToUpper(opts.ProductCode), p.registry)

	result := &Result{
		InputPath: inputPath,
		Report:    rep,
		Stats: ProcessingStats{
			RecordsProcessed: parsed.Records,
			ProductCodes:     parsed.Aggregate.Len(),
		},
	}

	// =========================================================================
	// STEP 5: WRITE REPORTS
	// =========================================================================

	if opts.XLSX || opts.XML {
		if err := p.files.EnsureReportDir(); err != nil {
			return nil, err
		}
	}

	if opts.XLSX {
		path := p.reportPath(rep, ".xlsx")
		if err := report.WriteXLSX(rep, path); err != nil {
			return nil, fmt.Errorf("failed to write XLSX report: %w", err)
		}
		result.ReportFiles = append(result.ReportFiles, path)
	}

	if opts.XML {
		path := p.reportPath(rep, ".xml")
		if err := report.WriteXML(rep, path); err != nil {
			return nil, fmt.Errorf("failed to write XML report: %w", err)
		}
		result.ReportFiles = append(result.ReportFiles, path)
	}

	result.Stats.ProcessingTime = time.Since(startTime)

	p.logger.Info("processed transaction file",
		zap.String("path", inputPath),
		zap.Int("records", result.Stats.RecordsProcessed),
		zap.Int("product_codes", result.Stats.ProductCodes),
		zap.Strings("reports", result.ReportFiles),
		zap.Duration("elapsed", result.Stats.ProcessingTime))

	return result, nil
}

// reportPath builds a report file path from the configured name format.
func (p *Processor) reportPath(rep *report.Report, ext string) string {
	name := utils.GenerateOutputFileName(p.cfg.ReportNameFormat, ext, map[string]string{
		"customer": rep.Header.CustomerName,
		"date":     rep.Header.PurchaseDate.Format("20060102"),
	})
	return p.files.ReportPath(name)
}
