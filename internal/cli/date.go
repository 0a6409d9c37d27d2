//go:build !nofs

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD>",
	Short: "Validate a civil date",
	Long: `Checks that a date exists in the proleptic Gregorian calendar.

Years range from -9999 to 9999. An invalid date is reported with the
reason, for example the day that is out of range for its month.`,
	Args: cobra.ExactArgs(1),
	RunE: runDate,
}

func runDate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	d, err := svc.CheckDate(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(map[string]interface{}{
			"date":  d.String(),
			"year":  d.Year(),
			"month": d.Month(),
			"day":   d.Day(),
			"valid": true,
		})
	}

	if flagQuiet {
		fmt.Println(d.String())
		return nil
	}
	fmt.Printf("%s is a valid date\n", d)
	return nil
}
