package types

// Store persists the contents of a stock between runs.
// Callers attach to a backend, load or save the item sequence, and detach
// when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load returns the stored items in their stored order.
	Load() ([]FoodItem, error)

	// Save replaces the stored items with items, keeping their order.
	Save(items []FoodItem) error
}
