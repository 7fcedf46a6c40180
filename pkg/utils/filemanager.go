// =============================================================================
// Barcode Transaction Processor - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the processor:
//   - Input path resolution with a data-directory fallback
//   - Report directory management
//   - Report file naming
//
// RESOLUTION ORDER:
//   1. The path as given (relative to the process or absolute)
//   2. The path joined to the working directory
//   3. The path inside the data directory of the working directory
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the processor.
type FileManager struct {
	// WorkDir is the directory relative paths are resolved against.
	// Empty means the process working directory.
	WorkDir string

	// DataDir is the conventional data directory, relative to WorkDir.
	DataDir string

	// ReportDir is the directory where reports are written.
	ReportDir string
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(dataDir, reportDir string) *FileManager {
	return &FileManager{
		DataDir:   dataDir,
		ReportDir: reportDir,
	}
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// ResolveInputPath locates an input file.
//
// PARAMETERS:
//   - filename: The path supplied by the user.
//
// RETURNS:
//   - The first candidate that exists.
//   - A *validation.NotFoundError listing every candidate if none exists.
func (fm *FileManager) ResolveInputPath(filename string) (string, error) {
	workDir, err := fm.workDir()
	if err != nil {
		return "", err
	}

	candidates := []string{
		filename,
		filepath.Join(workDir, filename),
		filepath.Join(workDir, fm.DataDir, filename),
	}
	if filepath.IsAbs(filename) {
		candidates = candidates[:1]
	}

	for _, candidate := range candidates {
		if FileExists(candidate) {
			return candidate, nil
		}
	}

	return "", &validation.NotFoundError{Path: filename, Tried: candidates}
}

// workDir returns the configured or current working directory.
func (fm *FileManager) workDir() (string, error) {
	if fm.WorkDir != "" {
		return fm.WorkDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureReportDir creates the report directory if it doesn't exist.
func (fm *FileManager) EnsureReportDir() error {
	if err := os.MkdirAll(fm.ReportDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.ReportDir, err)
	}
	return nil
}

// ReportPath joins a report file name to the report directory.
func (fm *FileManager) ReportPath(fileName string) string {
	return filepath.Join(fm.ReportDir, fileName)
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// unsafeNameChars matches characters that don't belong in a file name.
var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// GenerateOutputFileName generates a unique report file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD) unless params sets it
//               Any key of params, e.g. {customer}
//   - ext: The extension to ensure, e.g. ".xlsx".
//   - params: A map of placeholder values. Values are sanitized.
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//   format: "{customer}_{date}_{uuid}"
//   params: {"customer": "Jamie", "date": "20200123"}
//   output: "Jamie_20200123_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xlsx"
func GenerateOutputFileName(format, ext string, params map[string]string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
	}

	for key, value := range params {
		replacements["{"+key+"}"] = sanitizeName(value)
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// sanitizeName replaces runs of unsafe characters with a single underscore.
func sanitizeName(s string) string {
	s = unsafeNameChars.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a regular file (or anything that isn't a directory) exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
