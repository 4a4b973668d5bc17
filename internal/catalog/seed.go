package catalog

// Builtin returns the stock assortment the store opens with.
func Builtin() []Item {
	return []Item{
		{ID: "MILK", Name: "Milk", Category: string(Dairy), BasePriceCents: 8000},
		{ID: "YOGURT", Name: "Yogurt", Category: string(Dairy), BasePriceCents: 6000},
		{ID: "SOUR_CREAM", Name: "Sour cream", Category: string(Dairy), BasePriceCents: 9000},
		{ID: "COTTAGE_CHEESE", Name: "Cottage cheese", Category: string(Dairy), BasePriceCents: 12000},
		{ID: "CHEESE", Name: "Cheese", Category: string(Dairy), BasePriceCents: 30000},
		{ID: "KEFIR", Name: "Kefir", Category: string(Dairy), BasePriceCents: 7000},
		{ID: "CREAM", Name: "Cream", Category: string(Dairy), BasePriceCents: 11000},

		{ID: "WHITE_BREAD", Name: "White bread", Category: string(Bakery), BasePriceCents: 5000},
		{ID: "RYE_BREAD", Name: "Rye bread", Category: string(Bakery), BasePriceCents: 5500},
		{ID: "BUN", Name: "Sweet bun", Category: string(Bakery), BasePriceCents: 3500},
		{ID: "CROISSANT", Name: "Croissant", Category: string(Bakery), BasePriceCents: 6000},
		{ID: "BAGUETTE", Name: "Baguette", Category: string(Bakery), BasePriceCents: 7000},

		{ID: "BEEF", Name: "Beef", Category: string(Meat), BasePriceCents: 40000},
		{ID: "PORK", Name: "Pork", Category: string(Meat), BasePriceCents: 35000},
		{ID: "CHICKEN", Name: "Chicken", Category: string(Meat), BasePriceCents: 25000},
		{ID: "TURKEY", Name: "Turkey", Category: string(Meat), BasePriceCents: 30000},
		{ID: "BACON", Name: "Bacon", Category: string(Meat), BasePriceCents: 45000},

		{ID: "POTATO", Name: "Potatoes", Category: string(Vegetables), BasePriceCents: 4000},
		{ID: "CARROT", Name: "Carrots", Category: string(Vegetables), BasePriceCents: 5000},
		{ID: "TOMATO", Name: "Tomatoes", Category: string(Vegetables), BasePriceCents: 15000},
		{ID: "CUCUMBER", Name: "Cucumbers", Category: string(Vegetables), BasePriceCents: 12000},
		{ID: "APPLE", Name: "Apples", Category: string(Vegetables), BasePriceCents: 8000},
		{ID: "BANANA", Name: "Bananas", Category: string(Vegetables), BasePriceCents: 9000},
		{ID: "ONION", Name: "Onions", Category: string(Vegetables), BasePriceCents: 3000},

		{ID: "PASTA", Name: "Pasta", Category: string(Groceries), BasePriceCents: 6000},
		{ID: "RICE", Name: "Rice", Category: string(Groceries), BasePriceCents: 8000},
		{ID: "BUCKWHEAT", Name: "Buckwheat", Category: string(Groceries), BasePriceCents: 7000},
		{ID: "FLOUR", Name: "Flour", Category: string(Groceries), BasePriceCents: 5000},
		{ID: "SUGAR", Name: "Sugar", Category: string(Groceries), BasePriceCents: 4500},
		{ID: "SALT", Name: "Salt", Category: string(Groceries), BasePriceCents: 2000},
		{ID: "TEA", Name: "Tea", Category: string(Groceries), BasePriceCents: 12000},

		{ID: "DETERGENT", Name: "Laundry detergent", Category: string(Chemicals), BasePriceCents: 20000},
		{ID: "SOAP", Name: "Soap", Category: string(Chemicals), BasePriceCents: 4000},
		{ID: "SHAMPOO", Name: "Shampoo", Category: string(Chemicals), BasePriceCents: 18000},
		{ID: "TOOTHPASTE", Name: "Toothpaste", Category: string(Chemicals), BasePriceCents: 9000},
		{ID: "DISH_SOAP", Name: "Dish soap", Category: string(Chemicals), BasePriceCents: 8000},

		{ID: "BEER", Name: "Beer", Category: string(Alcohol), BasePriceCents: 12000},
		{ID: "RED_WINE", Name: "Red wine", Category: string(Alcohol), BasePriceCents: 40000},
		{ID: "WHITE_WINE", Name: "White wine", Category: string(Alcohol), BasePriceCents: 38000},
		{ID: "WHISKEY", Name: "Whiskey", Category: string(Alcohol), BasePriceCents: 80000},
		{ID: "CHAMPAGNE", Name: "Champagne", Category: string(Alcohol), BasePriceCents: 45000},
	}
}
