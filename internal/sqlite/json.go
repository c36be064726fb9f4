// JSON record structures for SQLite backend persistence.
// These structures define the JSONL record format for data files.
package sqlite

// itemsJSONL is the data file holding stock entries, one per line.
const itemsJSONL = "items.jsonl"

// itemJSON represents a stock entry in items.jsonl. Dates use dd/mm/yyyy.
type itemJSON struct {
	ItemID          string `json:"item_id"`
	Position        int    `json:"position"`
	Name            string `json:"name"`
	CatalogueNumber int    `json:"catalogue_number"`
	Quantity        int    `json:"quantity"`
	ProductionDate  string `json:"production_date"`
	ExpiryDate      string `json:"expiry_date"`
	MinTemperature  int    `json:"min_temperature"`
	MaxTemperature  int    `json:"max_temperature"`
	Price           int    `json:"price"`
}

// itemColumns lists the items table columns in itemJSON field order.
var itemColumns = []string{
	"item_id", "position", "name", "catalogue_number", "quantity",
	"production_date", "expiry_date", "min_temperature", "max_temperature", "price",
}
