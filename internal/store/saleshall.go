package store

import (
	"math/rand"
	"sort"
	"time"

	"supermarket/internal/product"
)

// SalesHall is the customer-facing stock view: one capacity-bounded shelf
// per product id. A product id exists in the hall only while its shelf holds
// something.
type SalesHall struct {
	shelves map[string]*Shelf
}

func NewSalesHall() *SalesHall {
	return &SalesHall{shelves: make(map[string]*Shelf)}
}

func (h *SalesHall) getOrCreateShelf(p *product.Product) *Shelf {
	shelf, ok := h.shelves[p.ID]
	if !ok {
		capacity := ShelfMaxWeightable
		if p.Category.Countable() {
			capacity = ShelfMaxCountable
		}
		shelf = NewShelf(p.ID, capacity)
		h.shelves[p.ID] = shelf
	}
	return shelf
}

// AddProduct puts a batch on its shelf, rejecting expired stock outright.
// The return value is the amount the shelf actually accepted; callers detect
// a shortfall by comparing it with the batch amount.
func (h *SalesHall) AddProduct(p *product.Product, today time.Time) float64 {
	if p == nil || p.IsExpired(today) {
		return 0
	}
	shelf := h.getOrCreateShelf(p)
	accepted := shelf.Add(p)
	if shelf.IsEmpty() {
		delete(h.shelves, p.ID)
	}
	return accepted
}

// Purchase decrements a specific batch, dropping the shelf once emptied.
// It refuses without mutating when the batch cannot cover the amount.
func (h *SalesHall) Purchase(productID, batchID string, amount float64) bool {
	shelf, ok := h.shelves[productID]
	if !ok {
		return false
	}
	if !shelf.Remove(batchID, amount) {
		return false
	}
	if shelf.IsEmpty() {
		delete(h.shelves, productID)
	}
	return true
}

// RemoveBatch discards an entire batch regardless of amount.
func (h *SalesHall) RemoveBatch(productID, batchID string) {
	shelf, ok := h.shelves[productID]
	if !ok {
		return
	}
	if b := shelf.Batch(batchID); b != nil {
		shelf.Remove(batchID, b.Amount())
	}
	if shelf.IsEmpty() {
		delete(h.shelves, productID)
	}
}

// RemoveExpired sweeps every shelf, discarding batches past their date and
// deleting shelves left empty. It iterates over snapshots so removal cannot
// skip entries. Calling it again with the same date removes nothing.
func (h *SalesHall) RemoveExpired(today time.Time) int {
	removed := 0
	for _, id := range h.ProductIDs() {
		shelf := h.shelves[id]
		for _, b := range shelf.Batches() {
			if b.IsExpired(today) && shelf.Remove(b.BatchID, b.Amount()) {
				removed++
			}
		}
		if shelf.IsEmpty() {
			delete(h.shelves, id)
		}
	}
	return removed
}

// ApplyExpiringDiscounts marks down batches inside the clearance window.
// An existing higher discount is never reduced.
func (h *SalesHall) ApplyExpiringDiscounts(today time.Time) int {
	count := 0
	for _, id := range h.ProductIDs() {
		for _, b := range h.shelves[id].Batches() {
			if b.ExpiresSoon(today) && b.Discount() < ExpiringDiscount {
				b.SetDiscount(ExpiringDiscount)
				count++
			}
		}
	}
	return count
}

// ApplyRandomDiscounts gives each batch an independent chance of a
// promotional discount, overwriting whatever discount it had.
func (h *SalesHall) ApplyRandomDiscounts(rng *rand.Rand) int {
	count := 0
	for _, id := range h.ProductIDs() {
		for _, b := range h.shelves[id].Batches() {
			if rng.Float64() < RandomDiscountProb {
				d := RandomDiscountMin + rng.Float64()*(RandomDiscountMax-RandomDiscountMin)
				b.SetDiscount(d)
				count++
			}
		}
	}
	return count
}

// LowStockIDs lists products whose shelf fill dropped below the restocking
// threshold.
func (h *SalesHall) LowStockIDs() []string {
	var low []string
	for _, id := range h.ProductIDs() {
		if h.shelves[id].NeedsRestocking() {
			low = append(low, id)
		}
	}
	return low
}

// CriticalShelves returns shelves under the critical fill threshold, least
// stocked first.
func (h *SalesHall) CriticalShelves() []*Shelf {
	var critical []*Shelf
	for _, id := range h.ProductIDs() {
		if s := h.shelves[id]; s.FillPercentage() < CriticalFillPercent {
			critical = append(critical, s)
		}
	}
	sort.Slice(critical, func(i, j int) bool {
		return critical[i].FillPercentage() < critical[j].FillPercentage()
	})
	return critical
}

// Shelf returns the shelf for a product id, or nil.
func (h *SalesHall) Shelf(productID string) *Shelf {
	return h.shelves[productID]
}

// ProductIDs returns the ids currently on the floor, sorted.
func (h *SalesHall) ProductIDs() []string {
	ids := make([]string, 0, len(h.shelves))
	for id := range h.shelves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProductsList returns a snapshot of every batch on the floor in a stable
// order.
func (h *SalesHall) ProductsList() []*product.Product {
	var out []*product.Product
	for _, id := range h.ProductIDs() {
		out = append(out, h.shelves[id].Batches()...)
	}
	return out
}

// BatchesFor returns the batches of one product id.
func (h *SalesHall) BatchesFor(productID string) []*product.Product {
	shelf, ok := h.shelves[productID]
	if !ok {
		return nil
	}
	return shelf.Batches()
}

// GetProduct returns an arbitrary batch of the product for inspection.
func (h *SalesHall) GetProduct(productID string) *product.Product {
	batches := h.BatchesFor(productID)
	if len(batches) == 0 {
		return nil
	}
	return batches[0]
}

// TotalAmount is the product's current shelf stock.
func (h *SalesHall) TotalAmount(productID string) float64 {
	shelf, ok := h.shelves[productID]
	if !ok {
		return 0
	}
	return shelf.CurrentAmount()
}

// TotalProducts counts distinct products on the floor.
func (h *SalesHall) TotalProducts() int { return len(h.shelves) }

func (h *SalesHall) TotalBatches() int {
	n := 0
	for _, s := range h.shelves {
		n += len(s.batches)
	}
	return n
}

func (h *SalesHall) IsEmpty() bool { return len(h.shelves) == 0 }
