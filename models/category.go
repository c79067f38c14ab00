package models

// menuCategories is the single source of truth for permitted menu
// categories. Server-side validation and the /api/categories endpoint
// both read this list; it must never be restated anywhere else.
var menuCategories = []string{
	// Starters & Small Plates
	"Appetizer",
	"Soup",
	"Salad",
	"Bread & Rolls",
	"Small Plates",
	"Tapas",
	"Mezze",

	// Main Courses
	"Main Course",
	"Seafood",
	"Chicken",
	"Beef",
	"Pork",
	"Lamb",
	"Vegetarian",
	"Vegan",
	"Pasta",
	"Pizza",
	"Rice Dishes",
	"Noodles",
	"Stir Fry",
	"Curry",
	"Grill",
	"BBQ",

	// International Cuisine
	"Italian",
	"Chinese",
	"Indian",
	"Mexican",
	"Thai",
	"Japanese",
	"Korean",
	"Mediterranean",
	"French",
	"American",

	// Beverages
	"Beverage",
	"Coffee",
	"Tea",
	"Juice",
	"Smoothie",
	"Milkshake",
	"Cocktail",
	"Beer",
	"Wine",
	"Soft Drink",
	"Water",

	// Desserts & Sweets
	"Dessert",
	"Ice Cream",
	"Cake",
	"Pastry",
	"Pie",
	"Cookies",
	"Chocolate",
	"Fruit",

	// Breakfast & Brunch
	"Breakfast",
	"Brunch",
	"Eggs",
	"Pancakes",
	"Waffles",
	"Cereal",
	"Yogurt",

	// Snacks & Sides
	"Snack",
	"Side Dish",
	"Chips",
	"Nuts",
	"Cheese",

	// Special Categories
	"Kids Menu",
	"Healthy Options",
	"Gluten Free",
	"Dairy Free",
	"Low Carb",
	"Seasonal Special",
	"Chef Special",
	"Daily Special",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(menuCategories))
	for _, c := range menuCategories {
		set[c] = struct{}{}
	}
	return set
}()

// Categories returns the ordered list of permitted menu categories.
// Callers must not mutate the returned slice.
func Categories() []string {
	out := make([]string, len(menuCategories))
	copy(out, menuCategories)
	return out
}

// IsValidCategory reports whether category is a member of the registry.
// Matching is exact and case-sensitive.
func IsValidCategory(category string) bool {
	_, ok := categorySet[category]
	return ok
}
