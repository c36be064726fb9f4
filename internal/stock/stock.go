// Package stock implements the stock engine: a capacity-bounded, ordered
// collection of food items.
//
// Entries are ordered by catalogue number. Entries sharing name and catalogue
// number (an identity) form a contiguous cluster; a new entry of an existing
// identity is placed at the head of its cluster. Fully equal entries (every
// field but quantity) never coexist: inserting one merges the quantities.
//
// The engine performs no I/O and is not safe for concurrent use.
package stock

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Capacity is the maximum number of entries a Stock holds.
const Capacity = 100

// Stock is an ordered sequence of food items. The zero value is an empty
// stock ready to use.
type Stock struct {
	items []types.FoodItem
}

// New returns an empty Stock.
func New() *Stock {
	return &Stock{items: make([]types.FoodItem, 0, Capacity)}
}

// Restore rebuilds a Stock from a sequence previously obtained from Items.
// The order is kept as given; items are not merged or re-sorted.
// Returns ErrStockFull if items exceeds Capacity, and ErrInvalidStock if the
// sequence breaks catalogue order, splits an identity cluster, or holds two
// equal entries.
func Restore(items []types.FoodItem) (*Stock, error) {
	if len(items) > Capacity {
		return nil, fmt.Errorf("restoring %d items: %w", len(items), types.ErrStockFull)
	}
	if err := checkOrder(items); err != nil {
		return nil, err
	}
	s := New()
	s.items = append(s.items, items...)
	return s, nil
}

// Rebuild inserts items one by one into an empty Stock, merging equal
// entries and restoring catalogue order. Clusters come out in reverse of
// their listed order. Returns ErrStockFull when the items need more than
// Capacity entries.
func Rebuild(items []types.FoodItem) (*Stock, error) {
	s := New()
	for i, it := range items {
		if !s.Insert(it) {
			return nil, fmt.Errorf("rebuilding at item %d: %w", i, types.ErrStockFull)
		}
	}
	return s, nil
}

// identity is the name and catalogue number shared by a cluster.
type identity struct {
	name      string
	catalogue int
}

// checkOrder verifies the invariants Insert maintains.
func checkOrder(items []types.FoodItem) error {
	closed := make(map[identity]bool)
	head := 0
	for i, it := range items {
		if i > 0 && it.SameIdentity(items[i-1]) {
			for _, prev := range items[head:i] {
				if prev.Equal(it) {
					return fmt.Errorf("item %d (%s) duplicates an earlier entry: %w", i, it.Name(), types.ErrInvalidStock)
				}
			}
			continue
		}
		if i > 0 {
			prev := items[i-1]
			closed[identity{prev.Name(), prev.CatalogueNumber()}] = true
			if it.CatalogueNumber() < prev.CatalogueNumber() {
				return fmt.Errorf("item %d (%s) is out of catalogue order: %w", i, it.Name(), types.ErrInvalidStock)
			}
		}
		if closed[identity{it.Name(), it.CatalogueNumber()}] {
			return fmt.Errorf("item %d (%s) splits its cluster: %w", i, it.Name(), types.ErrInvalidStock)
		}
		head = i
	}
	return nil
}

// Len returns the number of entries.
func (s *Stock) Len() int {
	return len(s.items)
}

// Items returns a copy of the entries in stock order.
func (s *Stock) Items() []types.FoodItem {
	return slices.Clone(s.items)
}

// Insert adds item to the stock. If an entry equal to item exists within
// item's identity cluster, their quantities are merged. Otherwise a new
// entry is placed at the head of the identity cluster, or by catalogue
// number when no cluster exists yet.
//
// Insert returns false, leaving the stock unchanged, only when a new entry
// is needed and the stock is at Capacity.
func (s *Stock) Insert(item types.FoodItem) bool {
	k := slices.IndexFunc(s.items, item.SameIdentity)
	if k < 0 {
		if s.full() {
			return false
		}
		pos := len(s.items)
		for pos > 0 && s.items[pos-1].CatalogueNumber() > item.CatalogueNumber() {
			pos--
		}
		s.items = slices.Insert(s.items, pos, item)
		return true
	}

	for j := k; j < len(s.items) && s.items[j].SameIdentity(item); j++ {
		if s.items[j].Equal(item) {
			s.items[j] = s.items[j].WithQuantity(s.items[j].Quantity() + item.Quantity())
			return true
		}
	}

	if s.full() {
		return false
	}
	s.items = slices.Insert(s.items, k, item)
	return true
}

func (s *Stock) full() bool {
	return len(s.items) >= Capacity
}

// MergeSummary returns the names of identity clusters whose total quantity
// is strictly below threshold, in stock order, separated by ", ".
func (s *Stock) MergeSummary(threshold int) string {
	var names []string
	for i := 0; i < len(s.items); {
		head := s.items[i]
		total := 0
		for ; i < len(s.items) && s.items[i].SameIdentity(head); i++ {
			total += s.items[i].Quantity()
		}
		if total < threshold {
			names = append(names, head.Name())
		}
	}
	return strings.Join(names, ", ")
}

// MovableCount returns the number of units that can be stored at temp.
func (s *Stock) MovableCount(temp int) int {
	total := 0
	for _, it := range s.items {
		if it.StoresAt(temp) {
			total += it.Quantity()
		}
	}
	return total
}

// removeAt deletes the entry at index i, shifting later entries left.
func (s *Stock) removeAt(i int) {
	s.items = slices.Delete(s.items, i, i+1)
}

// RemoveExpiredBefore removes every entry whose expiry date is strictly
// before d. Survivors keep their relative order.
func (s *Stock) RemoveExpiredBefore(d types.Date) {
	for i := 0; i < len(s.items); {
		if s.items[i].ExpiryDate().Before(d) {
			// The next entry now sits at i.
			s.removeAt(i)
			continue
		}
		i++
	}
}

// MostExpensive returns the entry with the highest price; the first one on
// ties. The boolean is false when the stock is empty.
func (s *Stock) MostExpensive() (types.FoodItem, bool) {
	if len(s.items) == 0 {
		return types.FoodItem{}, false
	}
	best := s.items[0]
	for _, it := range s.items[1:] {
		if best.IsCheaper(it) {
			best = it
		}
	}
	return best, true
}

// TotalPieceCount returns the sum of all quantities.
func (s *Stock) TotalPieceCount() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity()
	}
	return total
}

// ApplySales records one sold unit per name. For each name, in order, the
// first entry with that name loses one unit and is removed when no units
// remain. Names with no entry are ignored. Returns how many names matched
// an entry.
func (s *Stock) ApplySales(names []string) int {
	matched := 0
	for _, name := range names {
		i := slices.IndexFunc(s.items, func(it types.FoodItem) bool {
			return it.Name() == name
		})
		if i < 0 {
			continue
		}
		matched++
		left := s.items[i].Quantity() - 1
		if left <= 0 {
			s.removeAt(i)
			continue
		}
		s.items[i] = s.items[i].WithQuantity(left)
	}
	return matched
}

// CommonStorageTemperature returns the lowest temperature at which every
// entry can be stored. The boolean is false when the stock is empty or the
// temperature ranges do not all overlap.
func (s *Stock) CommonStorageTemperature() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	lo, hi := s.items[0].MinTemperature(), s.items[0].MaxTemperature()
	for _, it := range s.items[1:] {
		lo = max(lo, it.MinTemperature())
		hi = min(hi, it.MaxTemperature())
		if lo > hi {
			return 0, false
		}
	}
	return lo, true
}

// String lists every entry, one per line.
func (s *Stock) String() string {
	var b strings.Builder
	for _, it := range s.items {
		b.WriteString(it.String())
		b.WriteByte('\n')
	}
	return b.String()
}
