// JSONL loading for startup.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// loadAllJSONL reads items.jsonl from dataDir and inserts its records into
// the items table. Loading is transactional: all succeed or the table stays
// empty. Malformed lines, records with unparseable dates and records
// violating constraints are skipped.
// Unknown fields are ignored so newer files still load.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	records, err := readJSONL(filepath.Join(dataDir, itemsJSONL))
	if err != nil {
		return fmt.Errorf("reading %s: %w", itemsJSONL, err)
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRecords(tx, records); err != nil {
		return fmt.Errorf("loading %s into items: %w", itemsJSONL, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords decodes item records and inserts them into the items table.
func insertRecords(tx *sql.Tx, records []json.RawMessage) error {
	stmt, err := tx.Prepare(insertItemSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for items: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var it itemJSON
		if err := json.Unmarshal(rec, &it); err != nil {
			continue
		}
		if !validDates(it) {
			continue
		}
		if it.ItemID == "" {
			it.ItemID = generateUUID()
		}
		if _, err := stmt.Exec(itemArgs(it)...); err != nil {
			// Duplicate IDs or positions are skipped.
			continue
		}
	}
	return nil
}

// validDates reports whether both dates of it parse as dd/mm/yyyy.
func validDates(it itemJSON) bool {
	if _, err := types.ParseDate(it.ProductionDate); err != nil {
		return false
	}
	_, err := types.ParseDate(it.ExpiryDate)
	return err == nil
}

// insertItemSQL inserts one row with every column of itemColumns.
var insertItemSQL = fmt.Sprintf(
	"INSERT INTO items (%s) VALUES (%s)",
	strings.Join(itemColumns, ", "),
	strings.TrimSuffix(strings.Repeat("?, ", len(itemColumns)), ", "),
)

// itemArgs returns the column values of it in itemColumns order.
func itemArgs(it itemJSON) []any {
	return []any{
		it.ItemID, it.Position, it.Name, it.CatalogueNumber, it.Quantity,
		it.ProductionDate, it.ExpiryDate, it.MinTemperature, it.MaxTemperature, it.Price,
	}
}
