package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/stock"
	"github.com/mesh-intelligence/larder/pkg/types"
	"github.com/spf13/cobra"
)

// withStock attaches the store, rebuilds the stock from its contents and
// passes it to fn. When save is true and fn succeeds, the resulting stock
// is written back before the store is detached.
//
// A stored sequence that breaks the stock ordering, for example after a
// hand edit of items.jsonl, is re-inserted item by item with a warning.
func withStock(cmd *cobra.Command, save bool, fn func(*stock.Stock) error) (err error) {
	cfg, err := resolveStoreConfig()
	if err != nil {
		return userError(err)
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return sysError(fmt.Errorf("attach store: %w", err))
	}
	defer func() {
		if derr := store.Detach(); derr != nil && err == nil {
			err = sysError(fmt.Errorf("detach store: %w", derr))
		}
	}()

	items, err := store.Load()
	if err != nil {
		return sysError(fmt.Errorf("load stock: %w", err))
	}
	s, err := stock.Restore(items)
	if errors.Is(err, types.ErrInvalidStock) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; re-inserting stored items\n", err)
		s, err = stock.Rebuild(items)
	}
	if err != nil {
		return sysError(fmt.Errorf("restore stock: %w", err))
	}

	if err := fn(s); err != nil {
		return err
	}
	if !save {
		return nil
	}
	if err := store.Save(s.Items()); err != nil {
		return sysError(fmt.Errorf("save stock: %w", err))
	}
	return nil
}

// parseDateArg parses a dd/mm/yyyy argument, reporting bad input as a user
// error.
func parseDateArg(name, value string) (types.Date, error) {
	d, err := types.ParseDate(value)
	if err != nil {
		return types.Date{}, userError(fmt.Errorf("%s: %w", name, err))
	}
	return d, nil
}

var (
	errStockEmpty    = errors.New("stock is empty")
	errNoCommonRange = errors.New("no temperature suits every item")
)
