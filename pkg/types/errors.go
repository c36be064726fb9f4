package types

import "errors"

// Parsing errors.
var (
	ErrInvalidDate = errors.New("invalid date")
)

// Stock errors.
var (
	ErrStockFull    = errors.New("stock is full")
	ErrInvalidStock = errors.New("stock sequence breaks ordering")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
