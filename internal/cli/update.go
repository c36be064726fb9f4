package cli

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/stock"
	"github.com/spf13/cobra"
)

func newSellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell NAME...",
		Short: "Record sales, one unit per name",
		Long: `Sell takes one unit from the first entry carrying each name, in the order
given. Entries left without units are removed. Unknown names are ignored.

Example:
  larder sell Milk Milk Bread`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, true, func(s *stock.Stock) error {
				entries := s.Len()
				sold := s.ApplySales(args)
				fmt.Fprintf(cmd.OutOrStdout(), "Sold %d of %d requested units, %d entries removed\n", sold, len(args), entries-s.Len())
				return nil
			})
		},
	}
}

func newPurgeCmd() *cobra.Command {
	var before string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove entries that expired before a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg("before", before)
			if err != nil {
				return err
			}
			return withStock(cmd, true, func(s *stock.Stock) error {
				n := s.Len()
				s.RemoveExpiredBefore(d)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n-s.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "cutoff date (dd/mm/yyyy), exclusive")
	_ = cmd.MarkFlagRequired("before")
	return cmd
}
