package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/larder/pkg/stock"
	"github.com/mesh-intelligence/larder/pkg/types"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every entry in stock order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				return printItems(cmd.OutOrStdout(), s.Items())
			})
		},
	}
}

func newFreshCmd() *cobra.Command {
	var on string
	cmd := &cobra.Command{
		Use:   "fresh",
		Short: "List entries still fresh on a date",
		Long:  "Fresh lists the entries whose production-to-expiry window includes the\ngiven date, both ends inclusive.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg("on", on)
			if err != nil {
				return err
			}
			return withStock(cmd, false, func(s *stock.Stock) error {
				fresh := []types.FoodItem{}
				for _, it := range s.Items() {
					if it.IsFresh(d) {
						fresh = append(fresh, it)
					}
				}
				return printItems(cmd.OutOrStdout(), fresh)
			})
		},
	}
	cmd.Flags().StringVar(&on, "on", "", "date to check (dd/mm/yyyy)")
	_ = cmd.MarkFlagRequired("on")
	return cmd
}

func newExpensiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expensive",
		Short: "Show the entry with the highest price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStock(cmd, false, func(s *stock.Stock) error {
				it, ok := s.MostExpensive()
				if !ok {
					return userError(errStockEmpty)
				}
				if flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), it)
				}
				fmt.Fprintln(cmd.OutOrStdout(), it)
				return nil
			})
		},
	}
}

// printItems writes items one per line, or as a JSON array in --json mode.
func printItems(w io.Writer, items []types.FoodItem) error {
	if flags.jsonMode {
		if items == nil {
			items = []types.FoodItem{}
		}
		return writeJSON(w, items)
	}
	for _, it := range items {
		fmt.Fprintln(w, it)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
