package stock

import (
	"strings"
	"testing"

	"github.com/mesh-intelligence/larder/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item builds a FoodItem valid from 1/3/2020 to the given expiry day in
// March 2020, stored between 2 and 6 degrees.
func item(name string, catalogue, quantity, expiryDay, price int) types.FoodItem {
	return types.NewFoodItem(name, catalogue, quantity,
		types.NewDate(1, 3, 2020), types.NewDate(expiryDay, 3, 2020), 2, 6, price)
}

func catalogueNumbers(s *Stock) []int {
	var out []int
	for _, it := range s.Items() {
		out = append(out, it.CatalogueNumber())
	}
	return out
}

func quantities(s *Stock) []int {
	var out []int
	for _, it := range s.Items() {
		out = append(out, it.Quantity())
	}
	return out
}

// assertOrdered checks ascending catalogue order and identity contiguity.
func assertOrdered(t *testing.T, s *Stock) {
	t.Helper()
	items := s.Items()
	closed := map[[2]any]bool{}
	for i, it := range items {
		if i > 0 {
			assert.LessOrEqual(t, items[i-1].CatalogueNumber(), it.CatalogueNumber(), "catalogue order at %d", i)
			if !items[i-1].SameIdentity(it) {
				closed[[2]any{items[i-1].Name(), items[i-1].CatalogueNumber()}] = true
			}
		}
		assert.False(t, closed[[2]any{it.Name(), it.CatalogueNumber()}], "identity %s/%d split at %d", it.Name(), it.CatalogueNumber(), i)
		for j := i + 1; j < len(items); j++ {
			assert.False(t, it.Equal(items[j]), "entries %d and %d are equal", i, j)
		}
	}
}

func TestNewStockIsEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
	assert.Equal(t, "", s.String())

	var zero Stock
	assert.True(t, zero.Insert(item("Milk", 1111, 1, 10, 5)))
	assert.Equal(t, 1, zero.Len())
}

func TestInsertOrdersByCatalogueNumber(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Cheese", 3333, 1, 10, 5)))
	require.True(t, s.Insert(item("Bread", 1111, 1, 10, 5)))
	require.True(t, s.Insert(item("Butter", 2222, 1, 10, 5)))

	assert.Equal(t, []int{1111, 2222, 3333}, catalogueNumbers(s))
	assertOrdered(t, s)
}

func TestInsertMergesEqualItems(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Milk", 1234, 3, 10, 5)))
	before := s.Len()

	require.True(t, s.Insert(item("Milk", 1234, 4, 10, 5)))

	assert.Equal(t, before, s.Len())
	assert.Equal(t, []int{7}, quantities(s))
}

func TestInsertNewIdentityAfterEqualCatalogueNumbers(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Milk", 2000, 1, 10, 5)))
	require.True(t, s.Insert(item("Yogurt", 2000, 1, 10, 5)))
	require.True(t, s.Insert(item("Apple", 1000, 1, 10, 5)))

	names := []string{}
	for _, it := range s.Items() {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"Apple", "Milk", "Yogurt"}, names)
}

func TestInsertClustersIdentityAtHead(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Bread", 1111, 1, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 1, 10, 5)))
	require.True(t, s.Insert(item("Cheese", 3333, 1, 10, 5)))

	// Same identity, different expiry: goes to the head of the Milk cluster.
	require.True(t, s.Insert(item("Milk", 2222, 2, 15, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 3, 20, 5)))

	items := s.Items()
	require.Len(t, items, 5)
	assert.Equal(t, "Bread", items[0].Name())
	assert.Equal(t, 20, items[1].ExpiryDate().Day())
	assert.Equal(t, 15, items[2].ExpiryDate().Day())
	assert.Equal(t, 10, items[3].ExpiryDate().Day())
	assert.Equal(t, "Cheese", items[4].Name())

	// An insert equal to the last cluster member merges in place.
	require.True(t, s.Insert(item("Milk", 2222, 10, 10, 5)))
	assert.Equal(t, []int{1, 3, 2, 11, 1}, quantities(s))
	assertOrdered(t, s)
}

func TestInsertCopiesItem(t *testing.T) {
	s := New()
	it := item("Milk", 1234, 3, 10, 5)
	require.True(t, s.Insert(it))

	it = it.WithQuantity(99)
	got := s.Items()
	got[0] = got[0].WithQuantity(50)

	assert.Equal(t, []int{3}, quantities(s))
}

func TestInsertRejectsBeyondCapacity(t *testing.T) {
	s := New()
	for i := 0; i < Capacity; i++ {
		require.True(t, s.Insert(item("Item", 1000+i, 1, 10, 5)), "insert %d", i)
	}
	require.Equal(t, Capacity, s.Len())
	before := s.Items()

	assert.False(t, s.Insert(item("Extra", 5000, 1, 10, 5)))
	assert.Equal(t, Capacity, s.Len())
	assert.Equal(t, before, s.Items())

	// A new cluster member also needs a slot.
	assert.False(t, s.Insert(item("Item", 1000, 1, 20, 5)))
	assert.Equal(t, before, s.Items())

	// Merging does not.
	assert.True(t, s.Insert(item("Item", 1000, 4, 10, 5)))
	assert.Equal(t, 5, s.Items()[0].Quantity())
	assert.Equal(t, Capacity, s.Len())
}

func TestMergeSummary(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Bread", 1111, 2, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 3, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 4, 15, 5)))
	require.True(t, s.Insert(item("Cheese", 3333, 9, 10, 5)))
	require.True(t, s.Insert(item("Eggs", 4444, 1, 10, 5)))

	tests := []struct {
		threshold int
		want      string
	}{
		{0, ""},
		{2, "Eggs"},
		{3, "Bread, Eggs"},
		{8, "Bread, Milk, Eggs"},
		{7, "Bread, Eggs"},
		{10, "Bread, Milk, Cheese, Eggs"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.MergeSummary(tt.threshold), "threshold %d", tt.threshold)
	}

	assert.Equal(t, "", New().MergeSummary(100))
}

func TestMovableCount(t *testing.T) {
	s := New()
	require.True(t, s.Insert(types.NewFoodItem("Milk", 1111, 12,
		types.NewDate(1, 3, 2020), types.NewDate(10, 3, 2020), 7, 10, 5)))
	require.True(t, s.Insert(types.NewFoodItem("Cream", 2222, 2,
		types.NewDate(1, 3, 2020), types.NewDate(10, 3, 2020), 6, 10, 5)))

	assert.Equal(t, 14, s.MovableCount(8))
	assert.Equal(t, 14, s.MovableCount(10))
	assert.Equal(t, 2, s.MovableCount(6))
	assert.Equal(t, 0, s.MovableCount(11))
	assert.Equal(t, 0, New().MovableCount(8))
}

func TestRemoveExpiredBefore(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Bread", 1111, 1, 5, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 1, 20, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 1, 8, 5)))
	require.True(t, s.Insert(item("Cheese", 3333, 1, 10, 5)))
	require.True(t, s.Insert(item("Eggs", 4444, 1, 9, 5)))

	s.RemoveExpiredBefore(types.NewDate(10, 3, 2020))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name())
	assert.Equal(t, 20, items[0].ExpiryDate().Day())
	assert.Equal(t, "Cheese", items[1].Name(), "expiry equal to the cutoff is kept")
	assertOrdered(t, s)
}

func TestRemoveExpiredBeforeConsecutiveEntries(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("A", 1001, 1, 2, 5)))
	require.True(t, s.Insert(item("B", 1002, 1, 3, 5)))
	require.True(t, s.Insert(item("C", 1003, 1, 4, 5)))
	require.True(t, s.Insert(item("D", 1004, 1, 25, 5)))
	require.True(t, s.Insert(item("E", 1005, 1, 5, 5)))
	require.True(t, s.Insert(item("F", 1006, 1, 6, 5)))

	s.RemoveExpiredBefore(types.NewDate(20, 3, 2020))

	assert.Equal(t, []int{1004}, catalogueNumbers(s))
}

func TestRemoveExpiredBeforeAll(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("A", 1001, 1, 2, 5)))
	require.True(t, s.Insert(item("B", 1002, 1, 3, 5)))

	s.RemoveExpiredBefore(types.NewDate(1, 4, 2020))
	assert.Equal(t, 0, s.Len())

	s.RemoveExpiredBefore(types.NewDate(1, 4, 2020))
	assert.Equal(t, 0, s.Len())
}

func TestRemoveAtCompacts(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("A", 1001, 1, 2, 5)))
	require.True(t, s.Insert(item("B", 1002, 1, 3, 5)))
	require.True(t, s.Insert(item("C", 1003, 1, 4, 5)))

	s.removeAt(1)
	assert.Equal(t, []int{1001, 1003}, catalogueNumbers(s))
	assert.Equal(t, types.FoodItem{}, s.items[:3][2], "vacated slot must be cleared")

	s.removeAt(1)
	s.removeAt(0)
	assert.Equal(t, 0, s.Len())
}

func TestMostExpensive(t *testing.T) {
	_, ok := New().MostExpensive()
	assert.False(t, ok)

	s := New()
	require.True(t, s.Insert(item("A", 1001, 1, 10, 5)))
	require.True(t, s.Insert(item("B", 1002, 1, 10, 20)))
	require.True(t, s.Insert(item("C", 1003, 1, 10, 12)))
	require.True(t, s.Insert(item("D", 1004, 1, 10, 20)))

	got, ok := s.MostExpensive()
	require.True(t, ok)
	assert.Equal(t, 20, got.Price())
	assert.Equal(t, "B", got.Name(), "first entry wins ties")
}

func TestTotalPieceCount(t *testing.T) {
	assert.Equal(t, 0, New().TotalPieceCount())

	s := New()
	require.True(t, s.Insert(item("A", 1001, 4, 10, 5)))
	require.True(t, s.Insert(item("A", 1001, 3, 12, 5)))
	require.True(t, s.Insert(item("B", 1002, 0, 10, 5)))
	assert.Equal(t, 7, s.TotalPieceCount())
}

func TestApplySales(t *testing.T) {
	tests := []struct {
		name        string
		sales       []string
		wantNames   []string
		wantQty     []int
		wantMatched int
	}{
		{
			name:        "two sales empty a two unit entry",
			sales:       []string{"Milk", "Milk"},
			wantNames:   []string{"Bread", "Cheese"},
			wantQty:     []int{3, 1},
			wantMatched: 2,
		},
		{
			name:        "unknown name is ignored",
			sales:       []string{"Wine"},
			wantNames:   []string{"Bread", "Milk", "Cheese"},
			wantQty:     []int{3, 2, 1},
			wantMatched: 0,
		},
		{
			name:        "each name applies independently",
			sales:       []string{"Bread", "Cheese", "Bread"},
			wantNames:   []string{"Bread", "Milk"},
			wantQty:     []int{1, 2},
			wantMatched: 3,
		},
		{
			name:        "no sales",
			sales:       nil,
			wantNames:   []string{"Bread", "Milk", "Cheese"},
			wantQty:     []int{3, 2, 1},
			wantMatched: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.True(t, s.Insert(item("Bread", 1111, 3, 10, 5)))
			require.True(t, s.Insert(item("Milk", 2222, 2, 10, 5)))
			require.True(t, s.Insert(item("Cheese", 3333, 1, 10, 5)))

			assert.Equal(t, tt.wantMatched, s.ApplySales(tt.sales))

			var names []string
			for _, it := range s.Items() {
				names = append(names, it.Name())
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantQty, quantities(s))
		})
	}
}

func TestApplySalesMovesToNextClusterEntry(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Milk", 2222, 1, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 2, 20, 5)))

	// The head of the cluster (expiry 20) is sold first.
	s.ApplySales([]string{"Milk", "Milk", "Milk"})
	assert.Equal(t, 0, s.Len())
}

func TestApplySalesRemovesEmptyEntry(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Milk", 2222, 0, 10, 5)))
	require.True(t, s.Insert(item("Milk", 3333, 4, 10, 5)))

	assert.Equal(t, 1, s.ApplySales([]string{"Milk"}))
	assert.Equal(t, []int{3333}, catalogueNumbers(s))
	assert.Equal(t, []int{4}, quantities(s))
}

func TestCommonStorageTemperature(t *testing.T) {
	ranged := func(catalogue, lo, hi int) types.FoodItem {
		return types.NewFoodItem("X", catalogue, 1,
			types.NewDate(1, 3, 2020), types.NewDate(10, 3, 2020), lo, hi, 5)
	}

	_, ok := New().CommonStorageTemperature()
	assert.False(t, ok, "empty stock has no common temperature")

	s := New()
	require.True(t, s.Insert(ranged(1001, 2, 10)))
	require.True(t, s.Insert(ranged(1002, 4, 12)))
	require.True(t, s.Insert(ranged(1003, -1, 8)))
	got, ok := s.CommonStorageTemperature()
	require.True(t, ok)
	assert.Equal(t, 4, got)

	require.True(t, s.Insert(ranged(1004, 8, 20)))
	got, ok = s.CommonStorageTemperature()
	require.True(t, ok)
	assert.Equal(t, 8, got, "touching ranges still intersect")

	require.True(t, s.Insert(ranged(1005, 9, 20)))
	_, ok = s.CommonStorageTemperature()
	assert.False(t, ok)
}

func TestStringListsEveryEntry(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Bread", 1111, 1, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 1, 10, 5)))

	lines := strings.Split(strings.TrimRight(s.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "FoodItem: Bread")
	assert.Contains(t, lines[1], "FoodItem: Milk")
}

func TestRestore(t *testing.T) {
	s := New()
	require.True(t, s.Insert(item("Milk", 2222, 1, 10, 5)))
	require.True(t, s.Insert(item("Milk", 2222, 2, 20, 5)))
	require.True(t, s.Insert(item("Bread", 1111, 3, 10, 5)))

	restored, err := Restore(s.Items())
	require.NoError(t, err)
	assert.Equal(t, s.Items(), restored.Items())

	// A restored stock keeps inserting in order.
	require.True(t, restored.Insert(item("Milk", 2222, 5, 10, 5)))
	assert.Equal(t, []int{3, 2, 6}, quantities(restored))

	tooMany := make([]types.FoodItem, Capacity+1)
	_, err = Restore(tooMany)
	assert.ErrorIs(t, err, types.ErrStockFull)
}

func TestRestoreRejectsBrokenOrdering(t *testing.T) {
	milk := item("Milk", 3333, 1, 10, 5)
	bread := item("Bread", 1111, 2, 10, 5)

	tests := []struct {
		name  string
		items []types.FoodItem
	}{
		{"out of catalogue order", []types.FoodItem{milk, bread}},
		{"split cluster with same catalogue number", []types.FoodItem{
			item("Milk", 2222, 1, 10, 5), item("Oat", 2222, 1, 10, 5), item("Milk", 2222, 1, 20, 5),
		}},
		{"equal entries", []types.FoodItem{bread, milk, milk.WithQuantity(4)}},
		{"equal entries apart in one cluster", []types.FoodItem{
			milk, milk.WithExpiryDate(types.NewDate(20, 3, 2020)), milk,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.items)
			assert.ErrorIs(t, err, types.ErrInvalidStock)
		})
	}
}

func TestRestoreAcceptsSharedCatalogueNumbers(t *testing.T) {
	items := []types.FoodItem{
		item("Milk", 2222, 1, 20, 5), item("Milk", 2222, 1, 10, 5), item("Oat", 2222, 1, 10, 5),
	}
	s, err := Restore(items)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestRebuild(t *testing.T) {
	milk := item("Milk", 3333, 1, 10, 5)
	bread := item("Bread", 1111, 5, 10, 5)

	s, err := Rebuild([]types.FoodItem{milk, bread, milk})
	require.NoError(t, err)
	assert.Equal(t, []int{1111, 3333}, catalogueNumbers(s))
	assert.Equal(t, []int{5, 2}, quantities(s))
	assert.Equal(t, "Milk", s.MergeSummary(3))

	many := make([]types.FoodItem, 0, Capacity+1)
	for i := 0; i < Capacity+1; i++ {
		many = append(many, item("X", 1000+i, 1, 10, 5))
	}
	_, err = Rebuild(many)
	assert.ErrorIs(t, err, types.ErrStockFull)
}
