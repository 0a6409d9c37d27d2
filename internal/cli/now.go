//go:build !nofs

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/core"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the current time",
	Long:  `Shows the current time in the selected time zone.`,
	Args:  cobra.NoArgs,
	RunE:  runNow,
}

func runNow(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	z, err := svc.Now(flagZone)
	if err != nil {
		return err
	}

	return printZoned(core.Describe(z))
}
