// =============================================================================
// Barcode Transaction Processor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (barcodes)
//   ├── processCmd (barcodes process)
//   ├── addCmd     (barcodes add)
//   ├── listCmd    (barcodes list)
//   ├── importCmd  (barcodes import)
//   └── versionCmd (barcodes version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading config.yaml before any subcommand runs
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/barcode-processor/internal/config"
	"github.com/ginjaninja78/barcode-processor/internal/logging"
	"github.com/ginjaninja78/barcode-processor/internal/registry"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the configuration loaded before each command runs.
var appConfig *config.MainConfig

// logger is the structured logger built from appConfig.
var logger = zap.NewNop()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "barcodes",
	Short: "Barcode Transaction Processor - Summarize fixed-width sales files",
	Long: `Barcode Transaction Processor reads the fixed-width transaction files
produced at the till: a header line with the purchase date (MMDDYYYY) and the
customer name, followed by one 30-character barcode line per purchased item.

Each barcode is validated against the product registry, items are grouped by
product code and a purchase summary is printed.

Example Usage:
  barcodes process -f CustomerG.txt        # Summarize a transaction file
  barcodes process -p BEVG -i              # Show item IDs and BEVG subtypes
  barcodes add -p SNCK -d "Snacks"         # Register a new product code`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (defaults apply if it is missing)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// initConfig loads the configuration and builds the logger.
func initConfig() error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	l, err := logging.NewLogger(level, cfg.LogFile)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("registry", cfg.RegistryPath),
		zap.String("encoding", cfg.Encoding))

	return nil
}

// loadRegistry loads the product store named in the configuration.
func loadRegistry() (*registry.Registry, error) {
	reg, err := registry.Load(appConfig.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load product registry: %w", err)
	}
	logger.Debug("product registry loaded",
		zap.String("path", reg.Path()),
		zap.Int("codes", reg.Len()))
	return reg, nil
}
