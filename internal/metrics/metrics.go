package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the simulation's prometheus collectors behind one
// explicit registry, nothing is registered globally.
type Registry struct {
	reg *prometheus.Registry

	ExpiredRemoved    prometheus.Counter
	DiscountsApplied  prometheus.Counter
	Deliveries        prometheus.Counter
	DeliveredProducts prometheus.Counter
	Transfers         prometheus.Counter
	Purchases         prometheus.Counter
	EmptyPurchases    prometheus.Counter
	Revenue           prometheus.Counter

	SimDay              prometheus.Gauge
	HallShelves         prometheus.Gauge
	WarehouseAssortment prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	expired := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_expired_batches_total"})
	discounts := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_discounts_applied_total"})
	deliveries := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_deliveries_total"})
	delivered := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_delivered_products_total"})
	transfers := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_hall_transfers_total"})
	purchases := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_purchases_total"})
	emptyPurchases := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_purchases_empty_total"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{Name: "supermarket_revenue_total"})

	simDay := prometheus.NewGauge(prometheus.GaugeOpts{Name: "supermarket_sim_day"})
	hallShelves := prometheus.NewGauge(prometheus.GaugeOpts{Name: "supermarket_hall_shelves"})
	assortment := prometheus.NewGauge(prometheus.GaugeOpts{Name: "supermarket_warehouse_assortment"})

	r.MustRegister(expired, discounts, deliveries, delivered, transfers,
		purchases, emptyPurchases, revenue, simDay, hallShelves, assortment)

	return &Registry{
		reg:                 r,
		ExpiredRemoved:      expired,
		DiscountsApplied:    discounts,
		Deliveries:          deliveries,
		DeliveredProducts:   delivered,
		Transfers:           transfers,
		Purchases:           purchases,
		EmptyPurchases:      emptyPurchases,
		Revenue:             revenue,
		SimDay:              simDay,
		HallShelves:         hallShelves,
		WarehouseAssortment: assortment,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
