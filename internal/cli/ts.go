//go:build !nofs

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/core"
)

var tsFlagNanos int32

var tsCmd = &cobra.Command{
	Use:   "ts <seconds|rfc3339>",
	Short: "Convert a timestamp into a time zone",
	Long: `Converts a timestamp into the selected time zone.

The timestamp is either a number of seconds since the Unix epoch, with
--nanos for the fractional part, or an RFC 3339 string such as
"2021-07-30T21:20:04Z".`,
	Args: cobra.ExactArgs(1),
	RunE: runTS,
}

func init() {
	tsCmd.Flags().Int32Var(&tsFlagNanos, "nanos", 0, "Nanoseconds added to a numeric timestamp")
}

func runTS(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	var z chrono.Zoned
	if second, perr := strconv.ParseInt(args[0], 10, 64); perr == nil {
		z, err = svc.ConvertTimestamp(second, tsFlagNanos, flagZone)
	} else {
		z, err = svc.ParseTimestamp(args[0], flagZone)
	}
	if err != nil {
		return err
	}

	return printZoned(core.Describe(z))
}
