package flog

import "github.com/dangolsanat/FLog/internal/types"

// Public type aliases so SDK consumers can import only the flog package.
type (
	// Domain entities
	FoodEntry     = types.FoodEntry
	DeviceProfile = types.DeviceProfile
	MealType      = types.MealType
)

// Meal type values.
const (
	MealBreakfast = types.MealBreakfast
	MealBrunch    = types.MealBrunch
	MealLunch     = types.MealLunch
	MealDinner    = types.MealDinner
	MealSnack     = types.MealSnack
)

// MealTypes lists every accepted meal type in display order.
var MealTypes = types.MealTypes

// FilterIngredients trims and drops empty ingredient strings, substituting
// a single empty-string placeholder when nothing survives. Idempotent.
func FilterIngredients(ingredients []string) []string {
	return types.FilterIngredients(ingredients)
}
