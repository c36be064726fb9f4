// Package types defines the value types of the larder stock system (Date,
// FoodItem), the Store interface implemented by storage backends, backend
// configuration, and the standard error values.
//
// Construction never fails: invalid dates fall back to DefaultDate and
// invalid item fields are replaced by documented defaults. Errors are
// reserved for the outer layers (parsing, storage).
package types
