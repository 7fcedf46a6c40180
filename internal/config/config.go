// =============================================================================
// Barcode Transaction Processor - Configuration Module
// =============================================================================
//
// This module loads the application configuration (config.yaml). Every
// setting has a default, so the tool runs without a configuration file.
//
// CONFIGURATION FILE:
//   registry_path:      data/products.txt
//   data_dir:           data
//   default_input:      data/CustomerG.txt
//   encoding:           UTF-8
//   report_dir:         ./reports
//   report_name_format: "{customer}_{date}_{uuid}"
//   log_level:          info
//   log_file:           ""
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/barcode-processor/internal/barcodeparser"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DATA SETTINGS
	// =========================================================================

	// RegistryPath is the product store holding the code -> description literal.
	// Default: "data/products.txt"
	RegistryPath string `yaml:"registry_path"`

	// DataDir is the conventional data directory, relative to the working
	// directory. Input files not found elsewhere are looked up here.
	// Default: "data"
	DataDir string `yaml:"data_dir"`

	// DefaultInput is the transaction file processed when none is given.
	// Default: "data/CustomerG.txt"
	DefaultInput string `yaml:"default_input"`

	// Encoding is the character encoding of transaction files.
	// Common values: "UTF-8", "Shift_JIS", "ISO-8859-1", "Windows-1252"
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// ReportDir is where XLSX and XML reports are written.
	// Default: "./reports"
	ReportDir string `yaml:"report_dir"`

	// ReportNameFormat defines report file names (without extension).
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {customer}  - Customer name from the header
	//   {date}      - Purchase date (YYYYMMDD)
	// Default: "{customer}_{date}_{uuid}"
	ReportNameFormat string `yaml:"report_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFile is the path to the log file. Empty logs to stderr.
	LogFile string `yaml:"log_file"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct. A missing file yields the defaults.
//   - An error if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.RegistryPath == "" {
		config.RegistryPath = "data/products.txt"
	}
	if config.DataDir == "" {
		config.DataDir = "data"
	}
	if config.DefaultInput == "" {
		config.DefaultInput = "data/CustomerG.txt"
	}
	if config.Encoding == "" {
		config.Encoding = "UTF-8"
	}
	if config.ReportDir == "" {
		config.ReportDir = "./reports"
	}
	if config.ReportNameFormat == "" {
		config.ReportNameFormat = "{customer}_{date}_{uuid}"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	if _, err := barcodeparser.LookupEncoding(config.Encoding); err != nil {
		return err
	}

	return nil
}
