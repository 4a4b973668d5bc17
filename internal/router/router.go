package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"supermarket/internal/catalog"
	"supermarket/internal/metrics"
	"supermarket/internal/sim"
	"supermarket/internal/store"
)

// Setup registers the read-only inspection routes. The simulation itself is
// driven elsewhere; this surface only reports state.
func Setup(r *gin.Engine, db *gorm.DB, hall *store.SalesHall, warehouse *store.Warehouse,
	engine *sim.Engine, reg *metrics.Registry) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "pong"})
	})
	r.GET("/api/products", listProducts(db))
	r.GET("/api/hall", hallState(hall))
	r.GET("/api/hall/critical", criticalShelves(hall))
	r.GET("/api/warehouse", warehouseState(warehouse))
	r.GET("/api/report", runReport(engine))
	r.GET("/metrics", gin.WrapH(reg.Handler()))
}

// listProducts returns the catalog as stored.
func listProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []catalog.Item
		if err := db.Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": items})
	}
}

type shelfView struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	CurrentAmount  float64 `json:"current_amount"`
	MaxCapacity    float64 `json:"max_capacity"`
	FillPercentage float64 `json:"fill_percentage"`
	Batches        int     `json:"batches"`
}

func viewShelf(hall *store.SalesHall, s *store.Shelf) shelfView {
	v := shelfView{
		ProductID:      s.ProductID(),
		CurrentAmount:  s.CurrentAmount(),
		MaxCapacity:    s.MaxCapacity(),
		FillPercentage: s.FillPercentage(),
		Batches:        len(s.Batches()),
	}
	if b := hall.GetProduct(s.ProductID()); b != nil {
		v.Name = b.Name
	}
	return v
}

func hallState(hall *store.SalesHall) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := make([]shelfView, 0, hall.TotalProducts())
		for _, id := range hall.ProductIDs() {
			views = append(views, viewShelf(hall, hall.Shelf(id)))
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": views})
	}
}

func criticalShelves(hall *store.SalesHall) gin.HandlerFunc {
	return func(c *gin.Context) {
		critical := hall.CriticalShelves()
		views := make([]shelfView, 0, len(critical))
		for _, s := range critical {
			views = append(views, viewShelf(hall, s))
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": views})
	}
}

type warehouseView struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
	Batches     int     `json:"batches"`
}

func warehouseState(warehouse *store.Warehouse) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := make([]warehouseView, 0, warehouse.TotalProducts())
		for _, id := range warehouse.ProductIDs() {
			v := warehouseView{
				ProductID:   id,
				TotalAmount: warehouse.TotalAmount(id),
				Batches:     len(warehouse.BatchesFor(id)),
			}
			if b := warehouse.GetProduct(id); b != nil {
				v.Name = b.Name
			}
			views = append(views, v)
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": views})
	}
}

func runReport(engine *sim.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": engine.Reports()})
	}
}
