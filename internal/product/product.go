package product

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"supermarket/internal/catalog"
)

// Unit distinguishes the two stock variants: piece-counted and weight-tracked.
type Unit int

const (
	Piece Unit = iota
	Kilogram
)

func (u Unit) String() string {
	if u == Kilogram {
		return "kg"
	}
	return "pcs"
}

// DiscountWindowDays is how close to expiry a batch must be before it gets
// the clearance discount.
const DiscountWindowDays = 2

// amountEpsilon is the tolerance below which a weight is treated as zero.
const amountEpsilon = 0.001

// Product is one arrival lot (batch) of a catalog item. The header is fixed
// at creation; only the amount and discount mutate over the batch's life.
type Product struct {
	ID             string
	BatchID        string
	Name           string
	Category       catalog.Category
	Price          decimal.Decimal
	ProductionDate time.Time
	ShelfLifeDays  int

	unit     Unit
	quantity int
	weight   float64
	discount float64
}

// NewCountable builds a piece-counted batch.
func NewCountable(info catalog.Info, batchID string, producedOn time.Time, quantity int) *Product {
	if quantity < 0 {
		quantity = 0
	}
	return &Product{
		ID:             info.ID,
		BatchID:        batchID,
		Name:           info.Name,
		Category:       info.Category,
		Price:          info.BasePrice,
		ProductionDate: producedOn,
		ShelfLifeDays:  info.Category.ShelfLifeDays(),
		unit:           Piece,
		quantity:       quantity,
	}
}

// NewWeightable builds a weight-tracked batch.
func NewWeightable(info catalog.Info, batchID string, producedOn time.Time, weight float64) *Product {
	if weight < 0 {
		weight = 0
	}
	return &Product{
		ID:             info.ID,
		BatchID:        batchID,
		Name:           info.Name,
		Category:       info.Category,
		Price:          info.BasePrice,
		ProductionDate: producedOn,
		ShelfLifeDays:  info.Category.ShelfLifeDays(),
		unit:           Kilogram,
		weight:         weight,
	}
}

// Partial constructs a new batch carrying amount split off the original,
// preserving header and discount. The original is not mutated; the caller
// decrements it separately so the two copies never share state.
func Partial(original *Product, amount float64) *Product {
	clone := *original
	switch original.unit {
	case Piece:
		clone.quantity = wholeUnits(amount)
	default:
		clone.weight = math.Max(0, amount)
	}
	return &clone
}

func (p *Product) Unit() Unit    { return p.unit }
func (p *Product) Quantity() int { return p.quantity }

func (p *Product) Weight() float64 { return p.weight }

// Amount returns the remaining stock in this batch, units or kilograms.
func (p *Product) Amount() float64 {
	if p.unit == Piece {
		return float64(p.quantity)
	}
	return p.weight
}

// Depleted reports whether the batch holds nothing sellable.
func (p *Product) Depleted() bool {
	return p.Amount() <= amountEpsilon
}

// Grow increases the batch by up to amount and returns what was actually
// added. Piece-counted batches only grow by whole units.
func (p *Product) Grow(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if p.unit == Piece {
		n := wholeUnits(amount)
		p.quantity += n
		return float64(n)
	}
	p.weight += amount
	return amount
}

// Shrink decreases the batch by amount. It refuses (and leaves the batch
// untouched) when the batch holds less than requested.
func (p *Product) Shrink(amount float64) bool {
	if amount <= 0 {
		return false
	}
	if p.unit == Piece {
		n := wholeUnits(amount)
		if n == 0 || p.quantity < n {
			return false
		}
		p.quantity -= n
		return true
	}
	if p.weight+amountEpsilon < amount {
		return false
	}
	p.weight = math.Max(0, p.weight-amount)
	return true
}

func (p *Product) Discount() float64 { return p.discount }

// SetDiscount overwrites the batch discount, clamped to [0,1].
func (p *Product) SetDiscount(d float64) {
	p.discount = math.Min(1, math.Max(0, d))
}

// FinalPrice is the unit price after discount.
func (p *Product) FinalPrice() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromFloat(1 - p.discount))
}

// ExpiryDate is the last date the batch may still be sold.
func (p *Product) ExpiryDate() time.Time {
	return p.ProductionDate.AddDate(0, 0, p.ShelfLifeDays)
}

// IsExpired reports whether the batch is past its expiry date. The expiry
// date itself still counts as sellable.
func (p *Product) IsExpired(today time.Time) bool {
	return today.After(p.ExpiryDate())
}

// ExpiresSoon reports whether the batch falls inside the clearance window.
func (p *Product) ExpiresSoon(today time.Time) bool {
	return today.AddDate(0, 0, DiscountWindowDays).After(p.ExpiryDate())
}

// wholeUnits floors a fractional amount to whole pieces, tolerating float
// noise just under an integer boundary.
func wholeUnits(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount + amountEpsilon))
}
