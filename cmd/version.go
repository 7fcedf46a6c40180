// =============================================================================
// Barcode Transaction Processor - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   barcodes version [--short]
//
// Version and BuildDate are stamped by the release build:
//   go build -ldflags "-X '<module>/cmd.Version=1.2.0' -X '<module>/cmd.BuildDate=2026-01-01'"
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version is the release version.
	Version = "1.0.0"

	// BuildDate is the release build date.
	BuildDate = "unknown"
)

// shortVersion prints only the version number.
var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long: `Display the application version, build date, Go runtime and the
product store in use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print the version number only")
}

func printVersion(out io.Writer) error {
	if shortVersion {
		_, err := fmt.Fprintln(out, Version)
		return err
	}

	rows := [][2]string{
		{"Version", Version},
		{"Build Date", BuildDate},
		{"Go Version", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	}
	if appConfig != nil {
		rows = append(rows, [2]string{"Product Store", appConfig.RegistryPath})
	}

	if _, err := fmt.Fprintln(out, "Barcode Transaction Processor"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(out, "%-14s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}
