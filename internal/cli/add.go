package cli

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/stock"
	"github.com/mesh-intelligence/larder/pkg/types"
	"github.com/spf13/cobra"
)

type addOptions struct {
	name      string
	catalogue int
	quantity  int
	produced  string
	expires   string
	minTemp   int
	maxTemp   int
	price     int
}

func newAddCmd() *cobra.Command {
	var opts addOptions
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a food item to the stock",
		Long: `Add inserts a food item. An entry equal in every field but quantity has
its quantity increased; otherwise a new entry is placed next to others with
the same name and catalogue number, or in catalogue-number order.

Out-of-range values are normalized: an empty name becomes "item", a
catalogue number outside 1000-9999 becomes 9999, a negative quantity
becomes 0, a price below 1 becomes 1, swapped temperatures are exchanged,
and an expiry before production becomes the day after production.

Example:
  larder add --name Milk --catalogue 1234 --quantity 2 \
    --produced 01/03/2020 --expires 10/03/2020 --min-temp 2 --max-temp 6 --price 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "item name")
	f.IntVar(&opts.catalogue, "catalogue", types.DefaultCatalogueNumber, "four-digit catalogue number")
	f.IntVar(&opts.quantity, "quantity", 1, "number of units")
	f.StringVar(&opts.produced, "produced", "", "production date (dd/mm/yyyy)")
	f.StringVar(&opts.expires, "expires", "", "expiry date (dd/mm/yyyy)")
	f.IntVar(&opts.minTemp, "min-temp", 0, "lowest storage temperature")
	f.IntVar(&opts.maxTemp, "max-temp", 0, "highest storage temperature")
	f.IntVar(&opts.price, "price", types.DefaultPrice, "price per unit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("produced")
	_ = cmd.MarkFlagRequired("expires")
	return cmd
}

func runAdd(cmd *cobra.Command, opts addOptions) error {
	produced, err := parseDateArg("produced", opts.produced)
	if err != nil {
		return err
	}
	expires, err := parseDateArg("expires", opts.expires)
	if err != nil {
		return err
	}
	item := types.NewFoodItem(opts.name, opts.catalogue, opts.quantity,
		produced, expires, opts.minTemp, opts.maxTemp, opts.price)

	return withStock(cmd, true, func(s *stock.Stock) error {
		if !s.Insert(item) {
			return userError(fmt.Errorf("adding %s: %w", item.Name(), types.ErrStockFull))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d x %s (%d)\n", item.Quantity(), item.Name(), item.CatalogueNumber())
		return nil
	})
}
