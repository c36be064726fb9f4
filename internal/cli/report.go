package cli

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/stock"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.Len())
				return nil
			})
		},
	}
}

func newPiecesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pieces",
		Short: "Print the total number of units across all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.TotalPieceCount())
				return nil
			})
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Name the items running low",
		Long:  "Summary prints the names of items whose total quantity, over all entries\nwith the same name and catalogue number, is below the threshold.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.MergeSummary(threshold))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0, "report totals strictly below this value")
	_ = cmd.MarkFlagRequired("threshold")
	return cmd
}

func newMovableCmd() *cobra.Command {
	var temp int
	cmd := &cobra.Command{
		Use:   "movable",
		Short: "Count the units that can be stored at a temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.MovableCount(temp))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&temp, "temp", 0, "target storage temperature")
	_ = cmd.MarkFlagRequired("temp")
	return cmd
}

func newTemperatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "temperature",
		Short: "Print the lowest temperature at which every entry can be stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				t, ok := s.CommonStorageTemperature()
				if !ok {
					return userError(errNoCommonRange)
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			})
		},
	}
}

func newBudgetCmd() *cobra.Command {
	var amount int
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show how many units of each entry an amount buys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				for _, it := range s.Items() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", it.Name(), it.PurchasableCount(amount))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "money available")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
