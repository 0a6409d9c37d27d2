//go:build !nofs

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <zoneinfo.zip> <dir>",
	Short: "Extract a zoneinfo archive",
	Long: `Extracts a zoneinfo.zip archive into a directory.

The archive is checked against the configured limits before anything is
written, and entries that would escape the directory are refused.`,
	Args: cobra.ExactArgs(2),
	RunE: runUnpack,
}

func runUnpack(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	result, err := svc.Unpack(args[0], args[1])
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(result)
	}

	if flagQuiet {
		fmt.Println(result.Output)
		return nil
	}

	fmt.Printf("Extracted %d zones (%s) into %s\n", result.Zones, formatBytes(result.Bytes), result.Output)
	return nil
}
