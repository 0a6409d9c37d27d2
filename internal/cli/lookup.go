//go:build !nofs

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/chrono"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [<zone>]",
	Short: "Look up a time zone",
	Long: `Looks up a time zone by its IANA name and shows its current offset
and abbreviation.

The zone argument is optional and defaults to the configured zone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	name := flagZone
	if len(args) == 1 {
		name = args[0]
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	info, err := svc.DescribeZone(name)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(info)
	}
	if flagQuiet {
		fmt.Println(info.Name)
		return nil
	}

	return printTable([][]string{
		{"name", info.Name},
		{"origin", info.Origin},
		{"abbreviation", info.Abbreviation},
		{"offset", chrono.FormatOffset(info.OffsetSeconds)},
		{"now", info.Now},
	}, false)
}
