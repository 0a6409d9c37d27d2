//go:build !nofs

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/core"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid <uuid>",
	Short: "Show when a UUID was created",
	Long: `Extracts the creation time embedded in a version 1, 6 or 7 UUID and
shows it in the selected time zone.`,
	Args: cobra.ExactArgs(1),
	RunE: runUUID,
}

func runUUID(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	z, err := svc.UUIDTimestamp(args[0], flagZone)
	if err != nil {
		return err
	}

	return printZoned(core.Describe(z))
}
