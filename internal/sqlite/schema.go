// Package sqlite implements the SQLite storage backend for larder.
// This file holds the schema DDL executed on Attach.
package sqlite

// Schema DDL. The items table keeps stock order in position.
const (
	createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    name TEXT NOT NULL,
    catalogue_number INTEGER NOT NULL,
    quantity INTEGER NOT NULL,
    production_date TEXT NOT NULL,
    expiry_date TEXT NOT NULL,
    min_temperature INTEGER NOT NULL,
    max_temperature INTEGER NOT NULL,
    price INTEGER NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxItemsCatalogue = `CREATE INDEX idx_items_catalogue ON items(catalogue_number);`
	idxItemsName      = `CREATE INDEX idx_items_name ON items(name);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxItemsCatalogue,
	idxItemsName,
}
