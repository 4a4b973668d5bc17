package store

import (
	"log"
	"math/rand"
	"sort"
	"time"

	"supermarket/internal/product"
)

// Per-invocation work caps. Restocking is deliberately throttled: one pass
// never moves unbounded inventory, it gets re-invoked on the next restock
// event instead.
const (
	maxWarehouseRestocks = 3
	maxHallRestocks      = 5
	maxHallTransfers     = 10

	// A hall product is topped up until it holds this multiple of its
	// minimum stock.
	hallTopUpFactor = 1.5
)

// Manager orchestrates stock movement between warehouse and sales hall and
// issues delivery decisions.
type Manager struct {
	warehouse *Warehouse
	hall      *SalesHall
	factory   *product.Factory
	rng       *rand.Rand
}

func NewManager(warehouse *Warehouse, hall *SalesHall, factory *product.Factory, rng *rand.Rand) *Manager {
	return &Manager{warehouse: warehouse, hall: hall, factory: factory, rng: rng}
}

// CheckAndRestockWarehouse is phase one of the stock check: replenish the
// warehouse itself, with an emergency burst when it is empty or thin.
func (m *Manager) CheckAndRestockWarehouse(today time.Time) int {
	if m.warehouse.IsEmpty() {
		return m.emergencyDelivery(12+m.rng.Intn(8), today)
	}
	if m.warehouse.NeedsRestocking() {
		return m.emergencyDelivery(8+m.rng.Intn(5), today)
	}
	return m.restockLowWarehouseItems(today)
}

func (m *Manager) emergencyDelivery(count int, today time.Time) int {
	added := 0
	for i := 0; i < count; i++ {
		p, err := m.factory.RandomAny(today)
		if err != nil {
			log.Printf("manager: emergency delivery: %v", err)
			continue
		}
		if m.warehouse.AddProduct(p, today) {
			added++
		}
	}
	log.Printf("manager: emergency warehouse delivery, %d products accepted", added)
	return added
}

func (m *Manager) restockLowWarehouseItems(today time.Time) int {
	added := 0
	restocked := 0
	for _, id := range m.warehouse.LowStockIDs() {
		if restocked >= maxWarehouseRestocks {
			break
		}
		batchCount := 1 + m.rng.Intn(2)
		for i := 0; i < batchCount; i++ {
			p, err := m.factory.ByID(id, today)
			if err != nil {
				log.Printf("manager: restock %s: %v", id, err)
				break
			}
			if m.warehouse.AddProduct(p, today) {
				added++
			}
		}
		restocked++
	}
	if added > 0 {
		log.Printf("manager: topped up %d low warehouse positions (%d batches)", restocked, added)
	}
	return added
}

// CheckAndRestockSalesHall is phase two: refill low shelves from the
// warehouse, or stock the whole floor when it is empty.
func (m *Manager) CheckAndRestockSalesHall(today time.Time) int {
	if m.hall.TotalProducts() == 0 {
		return m.TransferProductsToHall(today)
	}
	restocked := 0
	for _, id := range m.hall.LowStockIDs() {
		if restocked >= maxHallRestocks {
			break
		}
		if m.hall.TotalAmount(id) < m.hallMinStock(id) && m.warehouse.TotalAmount(id) > 0 {
			if m.RestockProduct(id, today) {
				restocked++
			}
		}
	}
	return restocked
}

// TransferProductsToHall moves warehouse batches onto the floor, least
// stocked products first so nothing starves, bounded by the transfer cap.
func (m *Manager) TransferProductsToHall(today time.Time) int {
	available := m.warehouse.AllBatches()
	sort.SliceStable(available, func(i, j int) bool {
		return m.hall.TotalAmount(available[i].ID) < m.hall.TotalAmount(available[j].ID)
	})

	transferred := 0
	for _, b := range available {
		if transferred >= maxHallTransfers {
			break
		}
		if m.hall.TotalAmount(b.ID) >= m.hallMinStock(b.ID)*hallTopUpFactor {
			continue
		}
		if accepted := m.hall.AddProduct(b, today); accepted > 0 {
			if accepted+amountEpsilon < b.Amount() {
				log.Printf("manager: shelf %s full, accepted %.2f of %.2f", b.ID, accepted, b.Amount())
			}
			m.warehouse.RemoveBatch(b.ID, b.BatchID)
			transferred++
		}
	}
	if transferred > 0 {
		log.Printf("manager: moved %d batches to the sales hall", transferred)
	}
	return transferred
}

// RestockProduct moves a single batch of the product from the warehouse to
// its shelf. No-op when the warehouse holds none.
func (m *Manager) RestockProduct(productID string, today time.Time) bool {
	src := m.warehouse.GetProduct(productID)
	if src == nil {
		return false
	}
	moved := m.warehouse.TransferProduct(productID, src.Amount(), today)
	if moved == nil {
		return false
	}
	accepted := m.hall.AddProduct(moved, today)
	if accepted <= 0 {
		return false
	}
	if accepted+amountEpsilon < moved.Amount() {
		log.Printf("manager: shelf %s full, accepted %.2f of %.2f", productID, accepted, moved.Amount())
	}
	return true
}

// GenerateDelivery adds a delivery of random products to the warehouse. The
// size tier depends on how depleted the warehouse is.
func (m *Manager) GenerateDelivery(today time.Time) int {
	var count int
	switch {
	case m.warehouse.IsEmpty():
		count = 15 + m.rng.Intn(10)
	case m.warehouse.NeedsRestocking():
		count = 8 + m.rng.Intn(7)
	default:
		count = 3 + m.rng.Intn(4)
	}

	added := 0
	for i := 0; i < count; i++ {
		p, err := m.factory.RandomAny(today)
		if err != nil {
			log.Printf("manager: delivery: %v", err)
			continue
		}
		if m.warehouse.AddProduct(p, today) {
			added++
		}
	}
	log.Printf("manager: delivery accepted %d of %d products", added, count)
	return added
}

func (m *Manager) hallMinStock(productID string) float64 {
	p := m.hall.GetProduct(productID)
	if p == nil {
		p = m.warehouse.GetProduct(productID)
	}
	if p == nil {
		return 1.0
	}
	if p.Category.Countable() {
		return HallMinCountable
	}
	return HallMinWeightable
}
