package product

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermarket/internal/catalog"
)

var baseDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	return catalog.NewRegistry(catalog.Builtin())
}

func mustInfo(t *testing.T, reg *catalog.Registry, id string) catalog.Info {
	t.Helper()
	info, err := reg.FindByID(id)
	require.NoError(t, err)
	return info
}

func TestExpiryBoundary(t *testing.T) {
	reg := testRegistry(t)
	// Meat has a shelf life of exactly 5 days.
	p := NewWeightable(mustInfo(t, reg, "CHICKEN"), "B1", baseDate, 2.0)

	assert.False(t, p.IsExpired(baseDate))
	assert.False(t, p.IsExpired(baseDate.AddDate(0, 0, 5)), "the last shelf-life day is still sellable")
	assert.True(t, p.IsExpired(baseDate.AddDate(0, 0, 6)))
	assert.Equal(t, baseDate.AddDate(0, 0, 5), p.ExpiryDate())
}

func TestExpiresSoonWindow(t *testing.T) {
	reg := testRegistry(t)
	p := NewCountable(mustInfo(t, reg, "MILK"), "B1", baseDate, 10) // 7 day shelf life

	assert.False(t, p.ExpiresSoon(baseDate))
	assert.False(t, p.ExpiresSoon(baseDate.AddDate(0, 0, 5)))
	assert.True(t, p.ExpiresSoon(baseDate.AddDate(0, 0, 6)))
	assert.True(t, p.ExpiresSoon(baseDate.AddDate(0, 0, 7)))
}

func TestFinalPrice(t *testing.T) {
	reg := testRegistry(t)
	p := NewCountable(mustInfo(t, reg, "MILK"), "B1", baseDate, 10)

	assert.True(t, p.FinalPrice().Equal(decimal.RequireFromString("80")))

	p.SetDiscount(0.3)
	assert.True(t, p.FinalPrice().Equal(decimal.RequireFromString("56")))

	p.SetDiscount(1.5)
	assert.Equal(t, 1.0, p.Discount(), "discount clamps to 1")
	p.SetDiscount(-0.2)
	assert.Equal(t, 0.0, p.Discount(), "discount clamps to 0")
}

func TestShrinkRefusesOverdraw(t *testing.T) {
	reg := testRegistry(t)

	t.Run("countable", func(t *testing.T) {
		p := NewCountable(mustInfo(t, reg, "MILK"), "B1", baseDate, 5)
		assert.False(t, p.Shrink(6))
		assert.Equal(t, 5, p.Quantity())
		assert.True(t, p.Shrink(5))
		assert.Equal(t, 0, p.Quantity())
		assert.True(t, p.Depleted())
	})

	t.Run("weightable", func(t *testing.T) {
		p := NewWeightable(mustInfo(t, reg, "CHICKEN"), "B1", baseDate, 2.5)
		assert.False(t, p.Shrink(2.6))
		assert.InDelta(t, 2.5, p.Weight(), 1e-9)
		assert.True(t, p.Shrink(2.5))
		assert.True(t, p.Depleted())
	})
}

func TestGrowWholeUnits(t *testing.T) {
	reg := testRegistry(t)
	p := NewCountable(mustInfo(t, reg, "MILK"), "B1", baseDate, 0)

	assert.Equal(t, 3.0, p.Grow(3.7), "piece batches grow by whole units only")
	assert.Equal(t, 3, p.Quantity())
	assert.Equal(t, 0.0, p.Grow(-1))
}

func TestPartialSplitsWithoutAliasing(t *testing.T) {
	reg := testRegistry(t)
	src := NewWeightable(mustInfo(t, reg, "CHICKEN"), "B1", baseDate, 8.0)
	src.SetDiscount(0.2)

	part := Partial(src, 3.0)
	require.NotNil(t, part)
	assert.Equal(t, "B1", part.BatchID)
	assert.Equal(t, 0.2, part.Discount(), "split preserves the discount")
	assert.InDelta(t, 3.0, part.Weight(), 1e-9)
	assert.InDelta(t, 8.0, src.Weight(), 1e-9, "the source is not mutated by the split")

	// And the copies never share an amount.
	require.True(t, part.Shrink(1.0))
	assert.InDelta(t, 8.0, src.Weight(), 1e-9)
}

func TestFactoryDeterminism(t *testing.T) {
	reg := testRegistry(t)

	a, err := NewFactory(reg, rand.New(rand.NewSource(42))).Random(catalog.Dairy, baseDate)
	require.NoError(t, err)
	b, err := NewFactory(reg, rand.New(rand.NewSource(42))).Random(catalog.Dairy, baseDate)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Quantity(), b.Quantity())
	assert.Equal(t, a.ProductionDate, b.ProductionDate)
	assert.Equal(t, a.BatchID, b.BatchID, "same seed, same batch id")

	f := NewFactory(reg, rand.New(rand.NewSource(7)))
	first, err := f.Random(catalog.Dairy, baseDate)
	require.NoError(t, err)
	second, err := f.Random(catalog.Dairy, baseDate)
	require.NoError(t, err)
	assert.NotEqual(t, first.BatchID, second.BatchID, "every lot gets its own batch id")
}

func TestFactoryByID(t *testing.T) {
	reg := testRegistry(t)
	f := NewFactory(reg, rand.New(rand.NewSource(1)))

	p, err := f.ByID("CHICKEN", baseDate)
	require.NoError(t, err)
	assert.Equal(t, Kilogram, p.Unit())
	assert.InDelta(t, 8.0, p.Weight(), 1e-9)
	assert.Equal(t, baseDate, p.ProductionDate)

	_, err = f.ByID("NO_SUCH_SKU", baseDate)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
