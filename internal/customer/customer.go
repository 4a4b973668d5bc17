package customer

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"supermarket/internal/product"
	"supermarket/internal/store"
)

// Item selection policy. A single item never costs more than half of the
// budget left at the time it is picked.
const (
	maxCartItems   = 4
	budgetFraction = 0.5
	minPickWeight  = 0.05
)

// Customer holds a budget and, optionally, a loyalty card. All randomness
// comes from the generator passed into MakePurchase.
type Customer struct {
	ID        string
	Name      string
	budget    decimal.Decimal
	favorites map[string]bool
	card      *DiscountCard
}

func New(id, name string, budget decimal.Decimal, pref Preference, card *DiscountCard) *Customer {
	return &Customer{
		ID:        id,
		Name:      name,
		budget:    budget,
		favorites: pref.Favorites(),
		card:      card,
	}
}

func (c *Customer) Budget() decimal.Decimal { return c.budget }
func (c *Customer) Card() *DiscountCard     { return c.card }

// cartItem is one tentative line of a purchase, pinned to a specific batch.
type cartItem struct {
	productID string
	batchID   string
	amount    float64
	cost      decimal.Decimal
}

// MakePurchase runs the reserve-then-commit checkout against the hall and
// returns the realized revenue. An empty hall, a blown budget, or a failed
// batch validation all yield zero revenue and leave the hall untouched.
func (c *Customer) MakePurchase(hall *store.SalesHall, rng *rand.Rand) decimal.Decimal {
	cart := c.selectItems(hall, rng)
	if len(cart) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.cost)
	}
	if total.LessThanOrEqual(decimal.Zero) || total.GreaterThan(c.budget) {
		return decimal.Zero
	}

	// Validate at commit time; shelf state may have moved since selection.
	// Any miss abandons the whole cart, partial baskets are never committed.
	for _, item := range cart {
		shelf := hall.Shelf(item.productID)
		if shelf == nil {
			return decimal.Zero
		}
		b := shelf.Batch(item.batchID)
		if b == nil || b.Amount()+1e-9 < item.amount {
			return decimal.Zero
		}
	}

	// Only pay for what actually left the shelf. A false return here means
	// the batch moved under us after validation; that line is abandoned.
	committed := decimal.Zero
	for _, item := range cart {
		if hall.Purchase(item.productID, item.batchID, item.amount) {
			committed = committed.Add(item.cost)
		}
	}
	if committed.IsZero() {
		return decimal.Zero
	}

	payable := committed
	if c.card != nil {
		payable = committed.Sub(c.card.Redeem(committed, rng))
		c.card.AddPoints(payable)
	}
	c.budget = c.budget.Sub(payable)
	return payable
}

// selectItems picks up to four candidate batches from a hall snapshot,
// favorites before fillers, each capped by the remaining budget fraction.
func (c *Customer) selectItems(hall *store.SalesHall, rng *rand.Rand) []cartItem {
	available := hall.ProductsList()
	if len(available) == 0 {
		return nil
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	// Stable partition: favorites keep their shuffled order up front.
	ordered := make([]*product.Product, 0, len(available))
	for _, p := range available {
		if c.favorites[p.ID] {
			ordered = append(ordered, p)
		}
	}
	for _, p := range available {
		if !c.favorites[p.ID] {
			ordered = append(ordered, p)
		}
	}

	itemsToBuy := 1 + rng.Intn(maxCartItems)
	remaining := c.budget
	var cart []cartItem
	seen := make(map[string]bool)

	for _, p := range ordered {
		if len(cart) >= itemsToBuy {
			break
		}
		if seen[p.ID] {
			continue
		}
		var amount float64
		switch p.Unit() {
		case product.Piece:
			if p.Quantity() <= 0 {
				continue
			}
			n := 1 + rng.Intn(2)
			if n > p.Quantity() {
				n = p.Quantity()
			}
			amount = float64(n)
		default:
			if p.Weight() <= minPickWeight {
				continue
			}
			amount = 0.1 + rng.Float64()*0.9
			if amount > p.Weight() {
				amount = p.Weight()
			}
		}
		cost := p.FinalPrice().Mul(decimal.NewFromFloat(amount)).Round(2)
		if cost.GreaterThan(remaining.Mul(decimal.NewFromFloat(budgetFraction))) {
			continue
		}
		cart = append(cart, cartItem{
			productID: p.ID,
			batchID:   p.BatchID,
			amount:    amount,
			cost:      cost,
		})
		remaining = remaining.Sub(cost)
		seen[p.ID] = true
	}
	return cart
}
