package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermarket/internal/catalog"
	"supermarket/internal/product"
)

var baseDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

var testReg = catalog.NewRegistry(catalog.Builtin())

func info(t *testing.T, id string) catalog.Info {
	t.Helper()
	i, err := testReg.FindByID(id)
	require.NoError(t, err)
	return i
}

func countable(t *testing.T, id, batchID string, qty int) *product.Product {
	t.Helper()
	return product.NewCountable(info(t, id), batchID, baseDate, qty)
}

func weightable(t *testing.T, id, batchID string, kg float64) *product.Product {
	t.Helper()
	return product.NewWeightable(info(t, id), batchID, baseDate, kg)
}

// shelfAmountInvariant checks the cached amount against the batch sum.
func shelfAmountInvariant(t *testing.T, s *Shelf) {
	t.Helper()
	sum := 0.0
	for _, b := range s.Batches() {
		sum += b.Amount()
	}
	assert.InDelta(t, sum, s.CurrentAmount(), 1e-9)
	assert.LessOrEqual(t, s.CurrentAmount(), s.MaxCapacity()+1e-9)
}

func TestShelfClampsToCapacity(t *testing.T) {
	s := NewShelf("MILK", 50)

	accepted := s.Add(countable(t, "MILK", "B1", 80))
	assert.Equal(t, 50.0, accepted)
	assert.Equal(t, 50.0, s.CurrentAmount())
	assert.Equal(t, 100.0, s.FillPercentage())
	shelfAmountInvariant(t, s)

	// Full shelf accepts nothing more.
	assert.Equal(t, 0.0, s.Add(countable(t, "MILK", "B2", 10)))
	shelfAmountInvariant(t, s)
}

func TestShelfMergesSameBatch(t *testing.T) {
	s := NewShelf("MILK", 50)

	require.Equal(t, 10.0, s.Add(countable(t, "MILK", "B1", 10)))
	assert.Equal(t, 15.0, s.Add(countable(t, "MILK", "B1", 15)))

	require.Len(t, s.Batches(), 1)
	assert.Equal(t, 25, s.Batch("B1").Quantity())
	shelfAmountInvariant(t, s)
}

func TestShelfRejectsForeignAndEmpty(t *testing.T) {
	s := NewShelf("MILK", 50)

	assert.Equal(t, 0.0, s.Add(countable(t, "YOGURT", "B1", 10)), "wrong product id")
	assert.Equal(t, 0.0, s.Add(countable(t, "MILK", "B2", 0)), "zero amount is a no-op")
	assert.True(t, s.IsEmpty())
}

func TestShelfZeroCapacityRejects(t *testing.T) {
	s := NewShelf("MILK", 0)
	assert.Equal(t, 0.0, s.Add(countable(t, "MILK", "B1", 5)))
	assert.True(t, s.IsEmpty())
}

func TestShelfRemove(t *testing.T) {
	s := NewShelf("CHICKEN", 25)
	require.Equal(t, 8.0, s.Add(weightable(t, "CHICKEN", "B1", 8.0)))

	assert.False(t, s.Remove("B1", 9.0), "insufficient amount refuses without mutating")
	assert.InDelta(t, 8.0, s.CurrentAmount(), 1e-9)

	assert.False(t, s.Remove("B2", 1.0), "unknown batch")

	assert.True(t, s.Remove("B1", 3.0))
	assert.InDelta(t, 5.0, s.CurrentAmount(), 1e-9)
	shelfAmountInvariant(t, s)

	assert.True(t, s.Remove("B1", 5.0))
	assert.True(t, s.IsEmpty(), "a drained batch is deleted, not kept at zero")
	assert.InDelta(t, 0.0, s.CurrentAmount(), 1e-9)
}

func TestShelfPartialAcceptSplitsNotAliases(t *testing.T) {
	s := NewShelf("CHICKEN", 10)
	src := weightable(t, "CHICKEN", "B1", 16.0)
	src.SetDiscount(0.25)

	accepted := s.Add(src)
	assert.InDelta(t, 10.0, accepted, 1e-9)
	assert.InDelta(t, 16.0, src.Weight(), 1e-9, "the source batch keeps its own amount")

	onShelf := s.Batch("B1")
	require.NotNil(t, onShelf)
	assert.Equal(t, 0.25, onShelf.Discount(), "the split keeps the original discount")

	require.True(t, s.Remove("B1", 4.0))
	assert.InDelta(t, 16.0, src.Weight(), 1e-9, "shelf mutation never reaches the source")
}

func TestShelfNeedsRestocking(t *testing.T) {
	s := NewShelf("MILK", 50)
	require.Equal(t, 20.0, s.Add(countable(t, "MILK", "B1", 20)))
	assert.False(t, s.NeedsRestocking(), "40% fill is above the threshold")

	require.True(t, s.Remove("B1", 6))
	assert.True(t, s.NeedsRestocking(), "28% fill is below the threshold")
}
