// FoodItem entity: a catalogue identity with a validity window, storage
// temperature range, quantity and unit price.
package types

import (
	"encoding/json"
	"fmt"
)

// Item constraints and fallback values.
const (
	DefaultItemName        = "item"
	MinCatalogueNumber     = 1000
	MaxCatalogueNumber     = 9999
	DefaultCatalogueNumber = 9999
	MinPrice               = 1
	DefaultPrice           = 1
)

// FoodItem is a value type. Constructors repair invalid input instead of
// failing, and the With* methods return a new item.
type FoodItem struct {
	name            string
	catalogueNumber int
	quantity        int
	productionDate  Date
	expiryDate      Date
	minTemperature  int
	maxTemperature  int
	price           int
}

// NormalizeName replaces an empty name with DefaultItemName.
func NormalizeName(name string) string {
	if name == "" {
		return DefaultItemName
	}
	return name
}

// NormalizeCatalogueNumber replaces a number outside
// [MinCatalogueNumber, MaxCatalogueNumber] with DefaultCatalogueNumber.
func NormalizeCatalogueNumber(n int) int {
	if n < MinCatalogueNumber || n > MaxCatalogueNumber {
		return DefaultCatalogueNumber
	}
	return n
}

// NormalizeQuantity replaces a negative quantity with 0.
func NormalizeQuantity(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// NormalizePrice replaces a price below MinPrice with DefaultPrice.
func NormalizePrice(n int) int {
	if n < MinPrice {
		return DefaultPrice
	}
	return n
}

// NormalizeTemperatures returns the pair ordered so that min <= max.
func NormalizeTemperatures(minTemp, maxTemp int) (int, int) {
	if minTemp > maxTemp {
		return maxTemp, minTemp
	}
	return minTemp, maxTemp
}

// NormalizeExpiry returns expires, or the day after produced when expires
// precedes it.
func NormalizeExpiry(produced, expires Date) Date {
	if expires.Before(produced) {
		return produced.Next()
	}
	return expires
}

// NewFoodItem builds a FoodItem, normalizing every field. It never fails.
// A zero Date is treated as DefaultDate.
func NewFoodItem(name string, catalogueNumber, quantity int, produced, expires Date, minTemp, maxTemp, price int) FoodItem {
	if produced == (Date{}) {
		produced = DefaultDate
	}
	if expires == (Date{}) {
		expires = DefaultDate
	}
	lo, hi := NormalizeTemperatures(minTemp, maxTemp)
	return FoodItem{
		name:            NormalizeName(name),
		catalogueNumber: NormalizeCatalogueNumber(catalogueNumber),
		quantity:        NormalizeQuantity(quantity),
		productionDate:  produced,
		expiryDate:      NormalizeExpiry(produced, expires),
		minTemperature:  lo,
		maxTemperature:  hi,
		price:           NormalizePrice(price),
	}
}

// Name returns the item name.
func (f FoodItem) Name() string { return f.name }

// CatalogueNumber returns the catalogue number.
func (f FoodItem) CatalogueNumber() int { return f.catalogueNumber }

// Quantity returns the number of units held.
func (f FoodItem) Quantity() int { return f.quantity }

// ProductionDate returns the day the item was produced.
func (f FoodItem) ProductionDate() Date { return f.productionDate }

// ExpiryDate returns the last day the item is fresh.
func (f FoodItem) ExpiryDate() Date { return f.expiryDate }

// MinTemperature returns the lowest storage temperature.
func (f FoodItem) MinTemperature() int { return f.minTemperature }

// MaxTemperature returns the highest storage temperature.
func (f FoodItem) MaxTemperature() int { return f.maxTemperature }

// Price returns the unit price.
func (f FoodItem) Price() int { return f.price }

// Equal reports whether f and other match on every field except quantity.
func (f FoodItem) Equal(other FoodItem) bool {
	return f.SameIdentity(other) &&
		f.productionDate.Equal(other.productionDate) &&
		f.expiryDate.Equal(other.expiryDate) &&
		f.minTemperature == other.minTemperature &&
		f.maxTemperature == other.maxTemperature &&
		f.price == other.price
}

// SameIdentity reports whether f and other share name and catalogue number.
func (f FoodItem) SameIdentity(other FoodItem) bool {
	return f.name == other.name && f.catalogueNumber == other.catalogueNumber
}

// IsCheaper reports whether f costs strictly less than other.
func (f FoodItem) IsCheaper(other FoodItem) bool {
	return f.price < other.price
}

// IsOlderThan reports whether f was produced strictly before other.
func (f FoodItem) IsOlderThan(other FoodItem) bool {
	return f.productionDate.Before(other.productionDate)
}

// IsFresh reports whether d lies within [production, expiry], inclusive.
func (f FoodItem) IsFresh(d Date) bool {
	return !d.Before(f.productionDate) && !d.After(f.expiryDate)
}

// StoresAt reports whether temp lies within the item's storage range.
func (f FoodItem) StoresAt(temp int) bool {
	return temp >= f.minTemperature && temp <= f.maxTemperature
}

// PurchasableCount returns how many units budget buys, capped by quantity.
func (f FoodItem) PurchasableCount(budget int) int {
	if budget < MinPrice {
		return 0
	}
	return min(budget/f.price, f.quantity)
}

// WithQuantity returns f with quantity n, or f unchanged when n is negative.
func (f FoodItem) WithQuantity(n int) FoodItem {
	if n < 0 {
		return f
	}
	f.quantity = n
	return f
}

// WithPrice returns f with price n, or f unchanged when n < MinPrice.
func (f FoodItem) WithPrice(n int) FoodItem {
	if n < MinPrice {
		return f
	}
	f.price = n
	return f
}

// WithExpiryDate returns f expiring on d, or f unchanged when d is not a
// valid date or precedes the production date.
func (f FoodItem) WithExpiryDate(d Date) FoodItem {
	if !d.valid() || d.Before(f.productionDate) {
		return f
	}
	f.expiryDate = d
	return f
}

// WithProductionDate returns f produced on d, or f unchanged when d is not a
// valid date or is after the expiry date.
func (f FoodItem) WithProductionDate(d Date) FoodItem {
	if !d.valid() || d.After(f.expiryDate) {
		return f
	}
	f.productionDate = d
	return f
}

// String returns a one-line, tab-separated summary of every field.
func (f FoodItem) String() string {
	return fmt.Sprintf("FoodItem: %s\tCatalogueNumber: %d\tProductionDate: %s\tExpiryDate: %s\tQuantity: %d\tTemperature: %d..%d\tPrice: %d",
		f.name, f.catalogueNumber, f.productionDate, f.expiryDate, f.quantity,
		f.minTemperature, f.maxTemperature, f.price)
}

// foodItemJSON is the wire form of FoodItem.
type foodItemJSON struct {
	Name            string `json:"name"`
	CatalogueNumber int    `json:"catalogue_number"`
	Quantity        int    `json:"quantity"`
	ProductionDate  Date   `json:"production_date"`
	ExpiryDate      Date   `json:"expiry_date"`
	MinTemperature  int    `json:"min_temperature"`
	MaxTemperature  int    `json:"max_temperature"`
	Price           int    `json:"price"`
}

// MarshalJSON implements json.Marshaler.
func (f FoodItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(foodItemJSON{
		Name:            f.name,
		CatalogueNumber: f.catalogueNumber,
		Quantity:        f.quantity,
		ProductionDate:  f.productionDate,
		ExpiryDate:      f.expiryDate,
		MinTemperature:  f.minTemperature,
		MaxTemperature:  f.maxTemperature,
		Price:           f.price,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Decoded values pass through
// NewFoodItem, so the result is always normalized.
func (f *FoodItem) UnmarshalJSON(data []byte) error {
	var rec foodItemJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*f = NewFoodItem(rec.Name, rec.CatalogueNumber, rec.Quantity,
		rec.ProductionDate, rec.ExpiryDate,
		rec.MinTemperature, rec.MaxTemperature, rec.Price)
	return nil
}
