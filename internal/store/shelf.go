package store

import (
	"math"
	"sort"

	"supermarket/internal/product"
)

// Shelf is the capacity-bounded container for all batches of one product id
// on the sales floor. It exclusively owns the batch copies it holds; adding
// stock always splits off a fresh copy so the source keeps its own amount.
type Shelf struct {
	productID     string
	maxCapacity   float64
	batches       map[string]*product.Product
	currentAmount float64
}

func NewShelf(productID string, maxCapacity float64) *Shelf {
	return &Shelf{
		productID:   productID,
		maxCapacity: maxCapacity,
		batches:     make(map[string]*product.Product),
	}
}

func (s *Shelf) ProductID() string      { return s.productID }
func (s *Shelf) MaxCapacity() float64   { return s.maxCapacity }
func (s *Shelf) CurrentAmount() float64 { return s.currentAmount }

func (s *Shelf) AvailableSpace() float64 {
	return math.Max(0, s.maxCapacity-s.currentAmount)
}

func (s *Shelf) FillPercentage() float64 {
	if s.maxCapacity <= 0 {
		return 0
	}
	return s.currentAmount / s.maxCapacity * 100
}

func (s *Shelf) NeedsRestocking() bool {
	return s.FillPercentage() < RestockFillPercent
}

func (s *Shelf) IsEmpty() bool { return len(s.batches) == 0 }

// Batch returns the on-shelf batch with the given id, or nil.
func (s *Shelf) Batch(batchID string) *product.Product {
	return s.batches[batchID]
}

// Batches returns a snapshot of all on-shelf batches in a stable order, so
// sweeps that consume the shared RNG stay reproducible.
func (s *Shelf) Batches() []*product.Product {
	out := make([]*product.Product, 0, len(s.batches))
	for _, b := range s.batches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BatchID < out[j].BatchID })
	return out
}

// Add clamps the incoming amount to the free space and stores it, merging
// into an existing batch with the same id or splitting off a new partial
// copy. It returns the amount actually accepted; a partial fill is a normal
// outcome the caller reports as a shortfall, not an error.
func (s *Shelf) Add(p *product.Product) float64 {
	if p == nil || p.ID != s.productID {
		return 0
	}
	incoming := p.Amount()
	if incoming <= 0 {
		return 0
	}
	space := s.AvailableSpace()
	if space <= amountEpsilon {
		return 0
	}
	canAdd := math.Min(incoming, space)

	if existing, ok := s.batches[p.BatchID]; ok {
		added := existing.Grow(canAdd)
		s.currentAmount += added
		return added
	}

	part := product.Partial(p, canAdd)
	if part.Depleted() {
		return 0
	}
	s.batches[p.BatchID] = part
	s.currentAmount += part.Amount()
	return part.Amount()
}

// Remove decrements the named batch by amount. It refuses without mutating
// when the batch is missing or holds less than requested, so a failed check
// never leaves the shelf half-updated.
func (s *Shelf) Remove(batchID string, amount float64) bool {
	b, ok := s.batches[batchID]
	if !ok {
		return false
	}
	before := b.Amount()
	if !b.Shrink(amount) {
		return false
	}
	s.currentAmount -= before - b.Amount()
	if b.Depleted() {
		s.currentAmount -= b.Amount()
		delete(s.batches, batchID)
	}
	if s.currentAmount < 0 {
		s.currentAmount = 0
	}
	return true
}
