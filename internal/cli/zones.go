//go:build !nofs

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/core"
)

var (
	zonesFlagTree     bool
	zonesFlagMaxDepth int
)

var zonesCmd = &cobra.Command{
	Use:   "zones [<prefix>]",
	Short: "List time zones",
	Long: `Lists the time zones in the database, optionally only those whose
name starts with prefix.

With --tree the zones are grouped by area, like "America/".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZones,
}

func init() {
	zonesCmd.Flags().BoolVar(&zonesFlagTree, "tree", false, "Group zones by area")
	zonesCmd.Flags().IntVar(&zonesFlagMaxDepth, "max-depth", 0, "Maximum depth of the tree (0 = unlimited)")
}

func runZones(cmd *cobra.Command, args []string) error {
	var prefix string
	if len(args) == 1 {
		prefix = args[0]
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	names := svc.Zones(prefix)

	if zonesFlagTree {
		treeStr, zoneCount, groupCount := core.ZoneTree(names, zonesFlagMaxDepth)
		if flagJSON {
			return outputJSON(map[string]interface{}{
				"tree":        treeStr,
				"zone_count":  zoneCount,
				"group_count": groupCount,
			})
		}

		fmt.Println(svc.Database().Origin())
		fmt.Print(treeStr)
		if !flagQuiet {
			fmt.Printf("\n%d groups, %d zones\n", groupCount, zoneCount)
		}
		return nil
	}

	if flagJSON {
		return outputJSON(map[string]interface{}{
			"origin": svc.Database().Origin(),
			"zones":  names,
		})
	}

	for _, name := range names {
		fmt.Println(name)
	}
	if !flagQuiet {
		fmt.Printf("\n%d zones\n", len(names))
	}
	return nil
}
