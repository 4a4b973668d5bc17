package catalog

// Item is the persisted catalog row. Prices are stored as integer cents;
// the registry converts to decimal at the boundary.
type Item struct {
	ID             string `gorm:"primaryKey;size:32" json:"id"`
	Name           string `gorm:"size:128;not null" json:"name"`
	Category       string `gorm:"size:32;not null;index" json:"category"`
	BasePriceCents int64  `gorm:"not null" json:"base_price_cents"`
}

func (Item) TableName() string { return "catalog_items" }
