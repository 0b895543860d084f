package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	vaultscanlog "github.com/wardenclyffe/vaultscan/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for vaultscan.
var rootCmd = &cobra.Command{
	Use:   "vaultscan",
	Short: "Scan a repository for secrets, credentials, and sensitive metadata",
	Long: `Vaultscan scans a local working tree — and, optionally, its version-control
history — for credentials, connection strings, personal data, and sensitive
office-document metadata. It reports a deduplicated, classified, and
severity-ranked list of findings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		vaultscanlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
