package product

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"supermarket/internal/catalog"
)

// Factory constructs product batches from catalog data. All randomness,
// batch ids included, comes from the injected generator so runs are
// reproducible.
type Factory struct {
	reg *catalog.Registry
	rng *rand.Rand
}

func NewFactory(reg *catalog.Registry, rng *rand.Rand) *Factory {
	return &Factory{reg: reg, rng: rng}
}

func (f *Factory) newBatchID() string {
	return uuid.Must(uuid.NewRandomFromReader(f.rng)).String()
}

// Random builds a batch of a random catalog item of the given category.
// Production dates are scattered up to ten days back, so a delivery can
// legitimately contain stock that is already close to (or past) expiry.
func (f *Factory) Random(c catalog.Category, today time.Time) (*Product, error) {
	info, err := f.reg.RandomInfo(c, f.rng)
	if err != nil {
		return nil, fmt.Errorf("random product: %w", err)
	}
	producedOn := today.AddDate(0, 0, -f.rng.Intn(10))
	if c.Countable() {
		return NewCountable(info, f.newBatchID(), producedOn, 20+f.rng.Intn(30)), nil
	}
	return NewWeightable(info, f.newBatchID(), producedOn, 5.0+f.rng.Float64()*10.0), nil
}

// RandomAny builds a batch of a random item from a random category.
func (f *Factory) RandomAny(today time.Time) (*Product, error) {
	cats := catalog.Categories()
	return f.Random(cats[f.rng.Intn(len(cats))], today)
}

// ByID builds a fresh standard-size batch of a specific catalog item.
func (f *Factory) ByID(id string, today time.Time) (*Product, error) {
	info, err := f.reg.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("product by id: %w", err)
	}
	if info.Category.Countable() {
		return NewCountable(info, f.newBatchID(), today, 25), nil
	}
	return NewWeightable(info, f.newBatchID(), today, 8.0), nil
}
