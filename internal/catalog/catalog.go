package catalog

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product id is not in the catalog.
var ErrNotFound = errors.New("catalog: product not found")

// Info is the in-process view of a catalog item.
type Info struct {
	ID        string
	Name      string
	Category  Category
	BasePrice decimal.Decimal
}

// Registry is the immutable catalog lookup consumed by the factory and the
// storage layer. It is built once at startup and passed around explicitly.
type Registry struct {
	byID       map[string]Info
	byCategory map[Category][]Info
	ids        []string
}

// NewRegistry builds a registry from catalog rows.
func NewRegistry(items []Item) *Registry {
	r := &Registry{
		byID:       make(map[string]Info, len(items)),
		byCategory: make(map[Category][]Info),
	}
	for _, it := range items {
		info := Info{
			ID:        it.ID,
			Name:      it.Name,
			Category:  Category(it.Category),
			BasePrice: decimal.New(it.BasePriceCents, -2),
		}
		if _, dup := r.byID[info.ID]; dup {
			continue
		}
		r.byID[info.ID] = info
		r.byCategory[info.Category] = append(r.byCategory[info.Category], info)
		r.ids = append(r.ids, info.ID)
	}
	return r
}

// FindByID resolves a product id, reporting ErrNotFound for unknown ids.
func (r *Registry) FindByID(id string) (Info, error) {
	info, ok := r.byID[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return info, nil
}

// RandomInfo picks a random catalog entry of the given category.
func (r *Registry) RandomInfo(c Category, rng *rand.Rand) (Info, error) {
	infos := r.byCategory[c]
	if len(infos) == 0 {
		return Info{}, fmt.Errorf("%w: no items in category %s", ErrNotFound, c)
	}
	return infos[rng.Intn(len(infos))], nil
}

// IDs returns every known product id in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len reports how many items the catalog holds.
func (r *Registry) Len() int { return len(r.byID) }

// Seed migrates the catalog table and inserts the builtin assortment,
// skipping rows that already exist.
func Seed(db *gorm.DB) error {
	if err := db.AutoMigrate(&Item{}); err != nil {
		return fmt.Errorf("catalog migrate: %w", err)
	}
	for _, it := range Builtin() {
		res := db.Where(Item{ID: it.ID}).FirstOrCreate(&it)
		if res.Error != nil {
			return fmt.Errorf("catalog seed %s: %w", it.ID, res.Error)
		}
	}
	return nil
}

// LoadRegistry reads all catalog rows into a registry.
func LoadRegistry(db *gorm.DB) (*Registry, error) {
	var items []Item
	if err := db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("catalog load: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog load: table is empty")
	}
	return NewRegistry(items), nil
}
