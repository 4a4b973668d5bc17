package catalog

// Category groups products that share shelf life and handling rules.
type Category string

const (
	Dairy      Category = "dairy"
	Bakery     Category = "bakery"
	Meat       Category = "meat"
	Vegetables Category = "vegetables"
	Groceries  Category = "groceries"
	Chemicals  Category = "chemicals"
	Alcohol    Category = "alcohol"
)

// Categories returns every known category in a stable order.
func Categories() []Category {
	return []Category{Dairy, Bakery, Meat, Vegetables, Groceries, Chemicals, Alcohol}
}

// ShelfLifeDays is the number of days a batch of this category stays sellable
// after its production date.
func (c Category) ShelfLifeDays() int {
	switch c {
	case Dairy:
		return 7
	case Bakery:
		return 3
	case Meat:
		return 5
	case Vegetables:
		return 10
	case Groceries:
		return 30
	case Chemicals:
		return 180
	case Alcohol:
		return 365
	default:
		return 0
	}
}

// Countable reports whether stock of this category is tracked in whole units.
// Meat and vegetables are sold by weight, everything else by piece.
func (c Category) Countable() bool {
	return c != Meat && c != Vegetables
}
