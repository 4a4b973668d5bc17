package customer

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermarket/internal/catalog"
	"supermarket/internal/product"
	"supermarket/internal/store"
)

var baseDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

var testReg = catalog.NewRegistry(catalog.Builtin())

func hallWith(t *testing.T, id, batchID string, qty int) *store.SalesHall {
	t.Helper()
	info, err := testReg.FindByID(id)
	require.NoError(t, err)
	h := store.NewSalesHall()
	require.Positive(t, h.AddProduct(product.NewCountable(info, batchID, baseDate, qty), baseDate))
	return h
}

func TestPurchaseDebitsBudgetAndShelf(t *testing.T) {
	h := hallWith(t, "MILK", "B1", 10) // 80 a piece
	c := New("C1", "Test", decimal.NewFromInt(1000), Family, nil)
	rng := rand.New(rand.NewSource(11))

	revenue := c.MakePurchase(h, rng)
	require.True(t, revenue.IsPositive())

	bought := 10 - int(h.TotalAmount("MILK"))
	require.Positive(t, bought, "the shelf was decremented")
	assert.True(t, revenue.Equal(decimal.NewFromInt(int64(bought*80))),
		"revenue %s should equal %d pieces at 80", revenue, bought)
	assert.True(t, c.Budget().Equal(decimal.NewFromInt(1000).Sub(revenue)),
		"the budget drops by exactly the revenue")
}

func TestPurchaseRespectsDiscounts(t *testing.T) {
	h := hallWith(t, "MILK", "B1", 10)
	h.Shelf("MILK").Batch("B1").SetDiscount(0.5)
	c := New("C1", "Test", decimal.NewFromInt(1000), Family, nil)

	revenue := c.MakePurchase(h, rand.New(rand.NewSource(11)))
	require.True(t, revenue.IsPositive())

	bought := 10 - int(h.TotalAmount("MILK"))
	assert.True(t, revenue.Equal(decimal.NewFromInt(int64(bought*40))),
		"a 50%% discount halves the unit price")
}

func TestPurchaseEmptyHall(t *testing.T) {
	c := New("C1", "Test", decimal.NewFromInt(1000), Family, nil)
	revenue := c.MakePurchase(store.NewSalesHall(), rand.New(rand.NewSource(1)))
	assert.True(t, revenue.IsZero())
	assert.True(t, c.Budget().Equal(decimal.NewFromInt(1000)))
}

func TestPurchaseTooExpensive(t *testing.T) {
	// Cheapest pick is one 80-unit item; with budget 100 the 50% cap
	// rejects everything, so the hall stays untouched.
	h := hallWith(t, "MILK", "B1", 10)
	c := New("C1", "Test", decimal.NewFromInt(100), Family, nil)

	revenue := c.MakePurchase(h, rand.New(rand.NewSource(1)))
	assert.True(t, revenue.IsZero())
	assert.Equal(t, 10.0, h.TotalAmount("MILK"))
	assert.True(t, c.Budget().Equal(decimal.NewFromInt(100)))
}

func TestPurchaseChargesOnlyRemovedStock(t *testing.T) {
	ids := []string{"MILK", "YOGURT", "PASTA", "RICE"}
	for seed := int64(0); seed < 20; seed++ {
		h := store.NewSalesHall()
		before := make(map[string]float64)
		for i, id := range ids {
			info, err := testReg.FindByID(id)
			require.NoError(t, err)
			batch := product.NewCountable(info, fmt.Sprintf("B%d", i), baseDate, 20)
			require.Positive(t, h.AddProduct(batch, baseDate))
			before[id] = h.TotalAmount(id)
		}

		c := New("C1", "Test", decimal.NewFromInt(2000), Family, nil)
		revenue := c.MakePurchase(h, rand.New(rand.NewSource(seed)))

		// The charge must equal the value of what actually left the shelves,
		// never more.
		removedValue := decimal.Zero
		for _, id := range ids {
			info, err := testReg.FindByID(id)
			require.NoError(t, err)
			removed := before[id] - h.TotalAmount(id)
			removedValue = removedValue.Add(info.BasePrice.Mul(decimal.NewFromFloat(removed)))
		}
		assert.True(t, revenue.Equal(removedValue),
			"seed %d: charged %s for %s worth of removed stock", seed, revenue, removedValue)
		assert.True(t, c.Budget().Equal(decimal.NewFromInt(2000).Sub(revenue)), "seed %d", seed)
	}
}

func TestPurchaseWithCardEconomics(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		h := hallWith(t, "MILK", "B1", 50)
		card := NewDiscountCard("CARD-T")
		c := New("C1", "Test", decimal.NewFromInt(2000), Family, card)
		pointsBefore := card.Points()
		rng := rand.New(rand.NewSource(seed))

		payable := c.MakePurchase(h, rng)
		require.True(t, payable.IsPositive(), "seed %d", seed)

		total := decimal.NewFromInt(int64((50 - int(h.TotalAmount("MILK"))) * 80))
		redeemed := total.Sub(payable)

		assert.True(t, redeemed.GreaterThanOrEqual(decimal.Zero), "seed %d", seed)
		assert.True(t, redeemed.LessThanOrEqual(total.Mul(decimal.NewFromFloat(0.7)).Add(decimal.NewFromInt(1))),
			"seed %d: redemption caps at 70%% of the total", seed)
		assert.True(t, c.Budget().Equal(decimal.NewFromInt(2000).Sub(payable)),
			"seed %d: the budget is debited by the payable total, not the gross", seed)

		// Points: minus what was redeemed, plus 5% of what was paid.
		accrued := payable.Mul(decimal.NewFromFloat(0.05)).IntPart()
		assert.Equal(t, pointsBefore-redeemed.IntPart()+accrued, card.Points(), "seed %d", seed)
	}
}

func TestCardRedeemBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	total := decimal.NewFromInt(100)

	sawRedemption := false
	for i := 0; i < 200; i++ {
		card := NewDiscountCard("CARD-T")
		card.AddPoints(decimal.NewFromInt(3000)) // 50 + 150 points

		redeemed := card.Redeem(total, rng)
		require.True(t, redeemed.GreaterThanOrEqual(decimal.Zero))
		require.True(t, redeemed.LessThanOrEqual(decimal.NewFromInt(70)), "cap is 70%% of 100")
		if redeemed.IsPositive() {
			sawRedemption = true
			assert.Equal(t, int64(200)-redeemed.IntPart(), card.Points())
		}
	}
	assert.True(t, sawRedemption, "a 30%% chance over 200 tries")
}

func TestCardAddPoints(t *testing.T) {
	card := NewDiscountCard("CARD-T")
	card.AddPoints(decimal.NewFromFloat(123.45))
	assert.Equal(t, int64(50+6), card.Points(), "5%% of 123.45, floored")
}

func TestPoolRegularsCarryCards(t *testing.T) {
	pool := NewPool(rand.New(rand.NewSource(4)))
	regulars := pool.Regulars()
	require.Len(t, regulars, len(profiles))
	for _, r := range regulars {
		assert.NotNil(t, r.Card())
		assert.True(t, r.Budget().GreaterThanOrEqual(decimal.NewFromInt(800)))
		assert.True(t, r.Budget().LessThan(decimal.NewFromInt(2001)))
	}

	for i := 0; i < 50; i++ {
		assert.NotNil(t, pool.Pick())
	}
}
