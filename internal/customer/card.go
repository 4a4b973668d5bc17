package customer

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Point accrual and redemption policy for store loyalty cards. One point is
// worth one currency unit.
const (
	accrualRate    = 0.05
	redeemChance   = 0.30
	redeemTotalCap = 0.70
	startingPoints = 50
)

// DiscountCard accrues points on purchases and occasionally pays with them.
type DiscountCard struct {
	id     string
	points int64
}

func NewDiscountCard(id string) *DiscountCard {
	return &DiscountCard{id: id, points: startingPoints}
}

func (c *DiscountCard) ID() string    { return c.id }
func (c *DiscountCard) Points() int64 { return c.points }

// AddPoints credits the card with a share of the paid amount.
func (c *DiscountCard) AddPoints(paid decimal.Decimal) {
	c.points += paid.Mul(decimal.NewFromFloat(accrualRate)).IntPart()
}

// Redeem spends a random number of points against the total, at most 70% of
// it and never more than the card holds. Most purchases redeem nothing.
func (c *DiscountCard) Redeem(total decimal.Decimal, rng *rand.Rand) decimal.Decimal {
	if c.points <= 0 || rng.Float64() >= redeemChance {
		return decimal.Zero
	}
	max := total.Mul(decimal.NewFromFloat(redeemTotalCap)).IntPart()
	if c.points < max {
		max = c.points
	}
	if max <= 0 {
		return decimal.Zero
	}
	use := rng.Int63n(max + 1)
	if use == 0 {
		return decimal.Zero
	}
	c.points -= use
	return decimal.NewFromInt(use)
}
