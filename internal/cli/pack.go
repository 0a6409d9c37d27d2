//go:build !nofs

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack <zoneinfo-dir> <output.zip>",
	Short: "Pack a zoneinfo directory into an archive",
	Long: `Packs the TZif files of a zoneinfo directory into a zoneinfo.zip
archive that tzkit can load with tz.zip or TZKIT_TZZIP.

An existing archive is rotated into backups first
(output.bak.zip, output.bak.2.zip, ...).`,
	Args: cobra.ExactArgs(2),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	result, err := svc.Pack(args[0], args[1])
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

	fmt.Printf("Packed %d zones (%s) into %s\n", result.Zones, formatBytes(result.Bytes), result.Output)
	if result.BackupPath != "" {
		fmt.Printf("Previous archive saved as %s\n", result.BackupPath)
	}
	return nil
}
