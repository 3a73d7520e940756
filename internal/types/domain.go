package types

import (
	"net/url"
	"strings"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// MealType classifies when/how a meal was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealBrunch    MealType = "brunch"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists every accepted value in display order.
var MealTypes = []MealType{MealBreakfast, MealBrunch, MealLunch, MealDinner, MealSnack}

// Valid reports whether m is one of the accepted meal types.
func (m MealType) Valid() bool {
	for _, t := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// FoodEntry is one food-diary post. Field names follow the backend's
// snake_case wire format; timestamps travel as ISO-8601.
type FoodEntry struct {
	ID          string    `json:"id"`
	DeviceID    string    `json:"device_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	MealType    MealType  `json:"meal_type"`
	Ingredients []string  `json:"ingredients"`
	DateCreated time.Time `json:"created_at"`
	MealDate    time.Time `json:"meal_date"`
}

// ImageURL resolves PhotoURL into an absolute URL. Absolute values pass
// through untouched; storage-relative paths are resolved against the public
// object convention. Returns "" when the entry has no photo.
func (e FoodEntry) ImageURL(baseURL, bucket string) string {
	if e.PhotoURL == "" {
		return ""
	}
	if strings.HasPrefix(e.PhotoURL, "http") {
		return e.PhotoURL
	}
	return baseURL + "/storage/v1/object/public/" + bucket + "/" + url.PathEscape(e.PhotoURL)
}

// DeviceProfile is the one-per-device row standing in for a user account.
type DeviceProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
