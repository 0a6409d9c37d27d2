//go:build !nofs

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"

	// Global flags
	flagJSON  bool
	flagQuiet bool
	flagZone  string
	flagDebug bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tzkit",
	Short: "Time zone and timestamp toolkit",
	Long: `tzkit resolves IANA time zones, validates civil dates and converts
timestamps, protobuf timestamps and UUID creation times between zones.

Zones come from the system database, a zoneinfo directory or a
zoneinfo.zip archive. tzkit provides both CLI and MCP server interfaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVarP(&flagZone, "zone", "z", "", "Time zone to convert into (default: configured zone)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug output to stderr")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(tsCmd)
	rootCmd.AddCommand(uuidCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// GetVersion returns the version string
func GetVersion() string {
	if len(Commit) >= 7 && Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
