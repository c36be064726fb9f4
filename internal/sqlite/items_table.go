// Items table access: loading and saving the stock sequence.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Load returns the stored items ordered by position.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Load() ([]types.FoodItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT item_id, position, name, catalogue_number, quantity, production_date, expiry_date, min_temperature, max_temperature, price FROM items ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []types.FoodItem
	for rows.Next() {
		rec, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item, err := hydrateItem(rec)
		if err != nil {
			return nil, fmt.Errorf("hydrating item %s: %w", rec.ItemID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// Save replaces every stored row with items, recording their order, and
// persists items.jsonl atomically.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Save(items []types.FoodItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	records := make([]itemJSON, len(items))
	for i, it := range items {
		records[i] = dehydrateItem(generateUUID(), i, it)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}
	for _, rec := range records {
		if _, err := tx.Exec(insertItemSQL, itemArgs(rec)...); err != nil {
			return fmt.Errorf("inserting item %s: %w", rec.ItemID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}

	if err := persistItemsJSONL(b.dataDir, records); err != nil {
		return fmt.Errorf("persisting %s: %w", itemsJSONL, err)
	}
	return nil
}

// scanItem reads one items row.
func scanItem(rows *sql.Rows) (itemJSON, error) {
	var rec itemJSON
	err := rows.Scan(
		&rec.ItemID, &rec.Position, &rec.Name, &rec.CatalogueNumber, &rec.Quantity,
		&rec.ProductionDate, &rec.ExpiryDate, &rec.MinTemperature, &rec.MaxTemperature, &rec.Price,
	)
	return rec, err
}

// hydrateItem converts a stored record into a FoodItem. Field values pass
// through NewFoodItem and are normalized; unparseable dates are an error.
func hydrateItem(rec itemJSON) (types.FoodItem, error) {
	produced, err := types.ParseDate(rec.ProductionDate)
	if err != nil {
		return types.FoodItem{}, fmt.Errorf("production date: %w", err)
	}
	expires, err := types.ParseDate(rec.ExpiryDate)
	if err != nil {
		return types.FoodItem{}, fmt.Errorf("expiry date: %w", err)
	}
	return types.NewFoodItem(rec.Name, rec.CatalogueNumber, rec.Quantity,
		produced, expires, rec.MinTemperature, rec.MaxTemperature, rec.Price), nil
}

// dehydrateItem converts a FoodItem into its stored record.
func dehydrateItem(id string, position int, it types.FoodItem) itemJSON {
	return itemJSON{
		ItemID:          id,
		Position:        position,
		Name:            it.Name(),
		CatalogueNumber: it.CatalogueNumber(),
		Quantity:        it.Quantity(),
		ProductionDate:  it.ProductionDate().String(),
		ExpiryDate:      it.ExpiryDate().String(),
		MinTemperature:  it.MinTemperature(),
		MaxTemperature:  it.MaxTemperature(),
		Price:           it.Price(),
	}
}
