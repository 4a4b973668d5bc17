package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"supermarket/internal/catalog"
	"supermarket/internal/config"
	"supermarket/internal/customer"
	"supermarket/internal/metrics"
	"supermarket/internal/product"
	"supermarket/internal/router"
	"supermarket/internal/sim"
	"supermarket/internal/store"
)

const openingStock = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := catalog.Seed(db); err != nil {
		log.Fatalf("db seed: %v", err)
	}
	reg, err := catalog.LoadRegistry(db)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	// One generator for the whole run; a fixed SIM_SEED reproduces it.
	rng := rand.New(rand.NewSource(cfg.Seed))
	log.Printf("simulation seed %d, %d days from %s", cfg.Seed, cfg.Days, cfg.StartDate.Format("2006-01-02"))

	factory := product.NewFactory(reg, rng)
	warehouse := store.NewWarehouse()
	hall := store.NewSalesHall()
	manager := store.NewManager(warehouse, hall, factory, rng)
	pool := customer.NewPool(rng)
	m := metrics.NewRegistry()
	queue := sim.NewEventQueue(cfg.StartDate, rng)
	engine := sim.NewEngine(queue, warehouse, hall, manager, factory, pool, m, rng)

	engine.StockWarehouse(openingStock)
	for d := 0; d < cfg.Days; d++ {
		engine.RunDay()
		if d < cfg.Days-1 {
			if cfg.DayDelay > 0 {
				time.Sleep(cfg.DayDelay)
			}
			engine.NextDay()
		}
	}
	log.Printf("simulation finished after %d days", cfg.Days)

	if cfg.HTTPAddr == "" {
		return
	}
	r := gin.Default()
	router.Setup(r, db, hall, warehouse, engine, m)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
