package customer

// Preference is a coarse shopping profile that biases which products a
// customer reaches for first.
type Preference string

const (
	Healthy    Preference = "healthy"
	Family     Preference = "family"
	Budget     Preference = "budget"
	Gourmet    Preference = "gourmet"
	Student    Preference = "student"
	Vegetarian Preference = "vegetarian"
)

var favoriteSKUs = map[Preference][]string{
	Healthy:    {"YOGURT", "COTTAGE_CHEESE", "APPLE", "BANANA", "CARROT", "CHICKEN", "TURKEY", "KEFIR"},
	Family:     {"MILK", "WHITE_BREAD", "CHICKEN", "POTATO", "PASTA", "RICE", "SOUR_CREAM", "CUCUMBER"},
	Budget:     {"PASTA", "RICE", "POTATO", "ONION", "FLOUR", "SALT", "WHITE_BREAD", "BUCKWHEAT", "MILK", "CARROT"},
	Gourmet:    {"CHEESE", "BEEF", "RED_WINE", "WHISKEY", "BACON", "CREAM", "BAGUETTE", "CHAMPAGNE", "TOMATO"},
	Student:    {"PASTA", "BEER", "WHITE_BREAD", "MILK", "CHICKEN", "POTATO", "RICE"},
	Vegetarian: {"APPLE", "BANANA", "TOMATO", "CUCUMBER", "CARROT", "POTATO", "ONION", "PASTA", "RICE", "BUCKWHEAT", "FLOUR"},
}

// Favorites returns the profile's preferred product ids as a lookup set.
func (p Preference) Favorites() map[string]bool {
	out := make(map[string]bool)
	for _, id := range favoriteSKUs[p] {
		out[id] = true
	}
	return out
}
