// Package store holds the inventory containers: capacity-bounded shelves on
// the sales floor, the unbounded warehouse behind them, and the manager that
// moves stock between the two.
package store

// Capacity and threshold policy for the containers. Countable values are in
// pieces, weightable in kilograms.
const (
	ShelfMaxCountable  = 50.0
	ShelfMaxWeightable = 25.0

	// A shelf below this fill percentage is flagged for restocking.
	RestockFillPercent = 30.0
	// A shelf below this fill percentage shows up in the critical listing.
	CriticalFillPercent = 15.0

	HallMinCountable  = 10.0
	HallMinWeightable = 5.0

	WarehouseMinCountable  = 15.0
	WarehouseMinWeightable = 8.0
	// The warehouse is considered understocked when it carries fewer
	// distinct product ids than this, regardless of volume.
	WarehouseMinAssortment = 8
)

// Discount policy applied by the sales hall.
const (
	ExpiringDiscount   = 0.30
	RandomDiscountMin  = 0.10
	RandomDiscountMax  = 0.20
	RandomDiscountProb = 0.15
)

// amountEpsilon is the tolerance below which leftover weight counts as zero.
const amountEpsilon = 0.001
