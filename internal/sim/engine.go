package sim

import (
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"supermarket/internal/customer"
	"supermarket/internal/metrics"
	"supermarket/internal/product"
	"supermarket/internal/store"
)

// DayReport summarizes what one drained day did.
type DayReport struct {
	Day             int             `json:"day"`
	Date            string          `json:"date"`
	ExpiredRemoved  int             `json:"expired_removed"`
	DiscountsSet    int             `json:"discounts_set"`
	Delivered       int             `json:"delivered"`
	Transferred     int             `json:"transferred"`
	Purchases       int             `json:"purchases"`
	EmptyPurchases  int             `json:"empty_purchases"`
	Revenue         decimal.Decimal `json:"revenue"`
	WarehouseStocks int             `json:"warehouse_products"`
	HallShelves     int             `json:"hall_shelves"`
}

// Engine drives a run: it drains the event queue day by day and routes each
// event to the owning component. Everything is single-threaded; one day fully
// drains before the next begins.
type Engine struct {
	queue     *EventQueue
	warehouse *store.Warehouse
	hall      *store.SalesHall
	manager   *store.Manager
	factory   *product.Factory
	pool      *customer.Pool
	metrics   *metrics.Registry
	rng       *rand.Rand

	day     int
	reports []DayReport
}

// NewEngine wires the components together and generates the first day's
// events so the queue starts ready to drain.
func NewEngine(queue *EventQueue, warehouse *store.Warehouse, hall *store.SalesHall,
	manager *store.Manager, factory *product.Factory, pool *customer.Pool,
	reg *metrics.Registry, rng *rand.Rand) *Engine {
	e := &Engine{
		queue:     queue,
		warehouse: warehouse,
		hall:      hall,
		manager:   manager,
		factory:   factory,
		pool:      pool,
		metrics:   reg,
		rng:       rng,
	}
	queue.GenerateDailyEvents(2 + rng.Intn(5))
	queue.AddRandomEvents()
	return e
}

// StockWarehouse seeds the warehouse with random products before opening.
func (e *Engine) StockWarehouse(count int) {
	today := e.queue.CurrentDate()
	added := 0
	for i := 0; i < count; i++ {
		p, err := e.factory.RandomAny(today)
		if err != nil {
			log.Printf("engine: initial stocking: %v", err)
			continue
		}
		if e.warehouse.AddProduct(p, today) {
			added++
		}
	}
	log.Printf("engine: opening stock, %d products in the warehouse", added)
}

// RunDay drains the current day's queue and returns its report.
func (e *Engine) RunDay() DayReport {
	e.day++
	today := e.queue.CurrentDate()
	rep := DayReport{
		Day:     e.day,
		Date:    today.Format("2006-01-02"),
		Revenue: decimal.Zero,
	}
	log.Printf("=== day %d (%s), %d events ===", e.day, rep.Date, e.queue.Len())

	for {
		ev, ok := e.queue.Next()
		if !ok {
			break
		}
		e.handle(ev, &rep)
	}

	rep.WarehouseStocks = e.warehouse.TotalProducts()
	rep.HallShelves = e.hall.TotalProducts()
	e.metrics.SimDay.Set(float64(e.day))
	e.metrics.WarehouseAssortment.Set(float64(rep.WarehouseStocks))
	e.metrics.HallShelves.Set(float64(rep.HallShelves))
	e.reports = append(e.reports, rep)

	log.Printf("=== day %d done: revenue %s, %d/%d purchases filled, %d expired out ===",
		e.day, rep.Revenue.StringFixed(2), rep.Purchases-rep.EmptyPurchases, rep.Purchases, rep.ExpiredRemoved)
	return rep
}

// NextDay advances the queue to the following date.
func (e *Engine) NextDay() {
	e.queue.AdvanceDay()
}

// Run executes the given number of days back to back.
func (e *Engine) Run(days int) {
	for d := 0; d < days; d++ {
		e.RunDay()
		if d < days-1 {
			e.NextDay()
		}
	}
}

func (e *Engine) handle(ev Event, rep *DayReport) {
	today := ev.Date
	switch ev.Type {
	case EventExpireSweep:
		removed := e.hall.RemoveExpired(today) + e.warehouse.RemoveExpired(today)
		rep.ExpiredRemoved += removed
		e.metrics.ExpiredRemoved.Add(float64(removed))
		if removed > 0 {
			log.Printf("event %s: %d expired batches disposed", ev.Type, removed)
		}

	case EventDiscountCheck:
		set := e.hall.ApplyExpiringDiscounts(today)
		set += e.hall.ApplyRandomDiscounts(e.rng)
		rep.DiscountsSet += set
		e.metrics.DiscountsApplied.Add(float64(set))
		if set > 0 {
			log.Printf("event %s: %d batches marked down", ev.Type, set)
		}

	case EventDelivery:
		added := e.manager.GenerateDelivery(today)
		rep.Delivered += added
		e.metrics.Deliveries.Inc()
		e.metrics.DeliveredProducts.Add(float64(added))

	case EventTransferToHall:
		moved := e.manager.TransferProductsToHall(today)
		rep.Transferred += moved
		e.metrics.Transfers.Add(float64(moved))

	case EventPurchase:
		shopper := e.pool.Pick()
		revenue := shopper.MakePurchase(e.hall, e.rng)
		rep.Purchases++
		e.metrics.Purchases.Inc()
		if revenue.IsZero() {
			rep.EmptyPurchases++
			e.metrics.EmptyPurchases.Inc()
		} else {
			rep.Revenue = rep.Revenue.Add(revenue)
			rev, _ := revenue.Float64()
			e.metrics.Revenue.Add(rev)
			log.Printf("event %s: %s spent %s", ev.Type, shopper.Name, revenue.StringFixed(2))
		}

	case EventCheckStock:
		e.manager.CheckAndRestockWarehouse(today)

	case EventAutoRestock:
		moved := e.manager.CheckAndRestockSalesHall(today)
		rep.Transferred += moved
		e.metrics.Transfers.Add(float64(moved))

	default:
		log.Printf("event %v ignored: %s", ev.Type, ev.Description)
	}
}

// Reports returns the per-day summaries accumulated so far.
func (e *Engine) Reports() []DayReport {
	out := make([]DayReport, len(e.reports))
	copy(out, e.reports)
	return out
}

// CurrentDate exposes the queue's date for inspection surfaces.
func (e *Engine) CurrentDate() time.Time { return e.queue.CurrentDate() }
