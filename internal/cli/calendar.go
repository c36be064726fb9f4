package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// weekdayNames is indexed by types.Date.Weekday.
var weekdayNames = [...]string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func newWeekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday DATE",
		Short: "Print the day of the week for a dd/mm/yyyy date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg("date", args[0])
			if err != nil {
				return err
			}
			w := d.Weekday()
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", w, weekdayNames[w])
			return nil
		},
	}
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days DATE DATE",
		Short: "Print the number of days between two dd/mm/yyyy dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseDateArg("first date", args[0])
			if err != nil {
				return err
			}
			b, err := parseDateArg("second date", args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Difference(b))
			return nil
		},
	}
}
