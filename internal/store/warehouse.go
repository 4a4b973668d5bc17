package store

import (
	"sort"
	"time"

	"supermarket/internal/product"
)

// Warehouse is the upstream stock reservoir: per-product batch lists with no
// capacity bound.
type Warehouse struct {
	batches map[string][]*product.Product
}

func NewWarehouse() *Warehouse {
	return &Warehouse{batches: make(map[string][]*product.Product)}
}

// AddProduct accepts a whole batch unless it is already expired.
func (w *Warehouse) AddProduct(p *product.Product, today time.Time) bool {
	if p == nil || p.IsExpired(today) {
		return false
	}
	w.batches[p.ID] = append(w.batches[p.ID], p)
	return true
}

// TransferProduct splits up to requested off the first live batch of the
// product and hands the new batch to the caller, removing the source batch
// once drained. A batch that expired while sitting in the queue is skipped.
// Returning nil is the normal empty result, not an error.
func (w *Warehouse) TransferProduct(productID string, requested float64, today time.Time) *product.Product {
	if requested <= 0 {
		return nil
	}
	list := w.batches[productID]
	for i, b := range list {
		if b.IsExpired(today) || b.Depleted() {
			continue
		}
		moved := requested
		if avail := b.Amount(); avail < moved {
			moved = avail
		}
		part := product.Partial(b, moved)
		if part.Depleted() {
			return nil
		}
		if !b.Shrink(part.Amount()) {
			return nil
		}
		if b.Depleted() {
			w.batches[productID] = append(list[:i], list[i+1:]...)
			if len(w.batches[productID]) == 0 {
				delete(w.batches, productID)
			}
		}
		return part
	}
	return nil
}

// RemoveExpired discards every batch past its date and returns how many
// batches were thrown away.
func (w *Warehouse) RemoveExpired(today time.Time) int {
	removed := 0
	for id, list := range w.batches {
		kept := list[:0]
		for _, b := range list {
			if b.IsExpired(today) {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		if len(kept) == 0 {
			delete(w.batches, id)
		} else {
			w.batches[id] = kept
		}
	}
	return removed
}

// RemoveBatch drops a specific batch, and the product entry once its last
// batch is gone.
func (w *Warehouse) RemoveBatch(productID, batchID string) {
	list := w.batches[productID]
	kept := list[:0]
	for _, b := range list {
		if b.BatchID != batchID {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		delete(w.batches, productID)
	} else {
		w.batches[productID] = kept
	}
}

// GetProduct returns the first batch of the product, or nil when none held.
func (w *Warehouse) GetProduct(productID string) *product.Product {
	list := w.batches[productID]
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// BatchesFor returns a copy of the product's batch list.
func (w *Warehouse) BatchesFor(productID string) []*product.Product {
	list := w.batches[productID]
	out := make([]*product.Product, len(list))
	copy(out, list)
	return out
}

// AllBatches returns every warehouse batch in a stable order.
func (w *Warehouse) AllBatches() []*product.Product {
	ids := w.ProductIDs()
	var out []*product.Product
	for _, id := range ids {
		out = append(out, w.batches[id]...)
	}
	return out
}

// ProductIDs returns the distinct product ids held, sorted.
func (w *Warehouse) ProductIDs() []string {
	ids := make([]string, 0, len(w.batches))
	for id := range w.batches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalProducts counts distinct product ids held.
func (w *Warehouse) TotalProducts() int { return len(w.batches) }

func (w *Warehouse) TotalBatches() int {
	n := 0
	for _, list := range w.batches {
		n += len(list)
	}
	return n
}

// TotalAmount sums the product's stock across all of its batches.
func (w *Warehouse) TotalAmount(productID string) float64 {
	total := 0.0
	for _, b := range w.batches[productID] {
		total += b.Amount()
	}
	return total
}

func (w *Warehouse) IsEmpty() bool { return len(w.batches) == 0 }

// NeedsRestocking flags a thin assortment: too few distinct products,
// regardless of how much of each is held.
func (w *Warehouse) NeedsRestocking() bool {
	return w.TotalProducts() < WarehouseMinAssortment
}

// LowStockIDs lists products whose total stock is below the category
// minimum.
func (w *Warehouse) LowStockIDs() []string {
	var low []string
	for _, id := range w.ProductIDs() {
		if w.TotalAmount(id) < w.minStock(id) {
			low = append(low, id)
		}
	}
	return low
}

func (w *Warehouse) minStock(productID string) float64 {
	b := w.GetProduct(productID)
	if b == nil {
		return 1.0
	}
	if b.Category.Countable() {
		return WarehouseMinCountable
	}
	return WarehouseMinWeightable
}
