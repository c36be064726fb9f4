// Package stock provides the public API for the stock engine.
// This package exposes the engine type and its constructors while keeping
// the implementation internal.
package stock

import (
	"github.com/mesh-intelligence/larder/internal/stock"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Capacity is the maximum number of entries a Stock holds.
const Capacity = stock.Capacity

// Stock is an ordered, capacity-bounded collection of food items.
type Stock = stock.Stock

// New creates an empty Stock.
//
// Example:
//
//	s := stock.New()
//	ok := s.Insert(types.NewFoodItem("Milk", 1234, 2,
//	    types.NewDate(1, 3, 2020), types.NewDate(10, 3, 2020), 2, 6, 7))
func New() *Stock {
	return stock.New()
}

// Restore rebuilds a Stock from items in the order given. The sequence must
// already satisfy the stock ordering; otherwise ErrInvalidStock is returned.
func Restore(items []types.FoodItem) (*Stock, error) {
	return stock.Restore(items)
}

// Rebuild inserts items one by one into a new Stock.
func Rebuild(items []types.FoodItem) (*Stock, error) {
	return stock.Rebuild(items)
}
