package types

// Storage keys. Collections are stored as JSON arrays under these names;
// the session record and the scalar preferences use the remaining keys.
// The names are part of the on-disk layout and must not change.
const (
	KeyFoodItems     = "foodItems"
	KeyShoppingItems = "shoppingItems"
	KeyMealPlans     = "mealPlans"
	KeyRecipeNotes   = "recipeNotes"
	KeyUsers         = "registeredUsers"
	KeySession       = "smartPantryUser"

	// KeyLegacyFavorites is the retired favorite-recipes collection,
	// read once to migrate old data into KeyRecipeNotes.
	KeyLegacyFavorites = "favoriteRecipes"

	// PrefPrefix namespaces the accessibility preference keys, e.g.
	// "smartPantry_fontSize".
	PrefPrefix = "smartPantry_"

	// KeyTheme holds the color theme preference.
	KeyTheme = "smart-pantry-theme"
)
