// Package types defines the record types shared by every layer of the
// pantry: food items, shopping items, meal plan slots, recipe notes,
// registered users, and the session record. It also owns the fixed
// storage key layout, so the key names live in exactly one place.
package types

import (
	"strings"
	"time"

	"github.com/smartpantry/pantry/internal/validation"
)

// FoodCategories is the fixed set of categories a food item may belong to.
var FoodCategories = []string{
	"Fruits",
	"Vegetables",
	"Meat",
	"Seafood",
	"Dairy",
	"Grains",
	"Baking",
	"Spices",
	"Beverages",
	"Snacks",
	"Frozen",
	"Canned",
	"Other",
}

// IsFoodCategory reports whether name is one of FoodCategories.
func IsFoodCategory(name string) bool {
	for _, c := range FoodCategories {
		if c == name {
			return true
		}
	}
	return false
}

// FoodItem is a single inventory entry. ExpirationDate is a calendar
// date in DateLayout form; Quantity and Notes are optional free text.
type FoodItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	ExpirationDate string `json:"expirationDate"`
	Quantity       string `json:"quantity,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (f FoodItem) RecordID() string { return f.ID }

// ExpiresAt parses the item's expiration date.
func (f FoodItem) ExpiresAt() (time.Time, error) {
	return ParseDate(f.ExpirationDate)
}

func (f FoodItem) Validate() error {
	if err := validation.Required("name", f.Name); err != nil {
		return err
	}
	if err := validation.Required("category", f.Category); err != nil {
		return err
	}
	if !IsFoodCategory(f.Category) {
		return validation.Invalid("category", "must be one of the known food categories")
	}
	if err := validation.Required("expirationDate", f.ExpirationDate); err != nil {
		return err
	}
	if _, err := ParseDate(f.ExpirationDate); err != nil {
		return validation.Invalid("expirationDate", "must be a date in YYYY-MM-DD form")
	}
	return nil
}

// ShoppingItem is a single shopping list entry.
type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func (s ShoppingItem) RecordID() string { return s.ID }

func (s ShoppingItem) Validate() error {
	return validation.Required("name", s.Name)
}

// Weekdays lists the meal plan days in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealLabels lists the meal-of-day slots in display order.
var MealLabels = []string{"Breakfast", "Lunch", "Dinner"}

// MealPlanSlot is one cell of the weekly meal grid. The grid itself is
// fixed: slots are seeded once and only their Recipe is editable.
type MealPlanSlot struct {
	ID     string `json:"id"`
	Day    string `json:"day"`
	Meal   string `json:"meal"`
	Recipe string `json:"recipe"`
}

func (m MealPlanSlot) RecordID() string { return m.ID }

func (m MealPlanSlot) Validate() error {
	if err := validation.OneOf("day", m.Day, Weekdays); err != nil {
		return err
	}
	return validation.OneOf("meal", m.Meal, MealLabels)
}

// RecipeNote is a saved recipe. Notes are created and deleted whole,
// never edited in place.
type RecipeNote struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r RecipeNote) RecordID() string { return r.ID }

func (r RecipeNote) Validate() error {
	return validation.Required("title", r.Title)
}

// User is a registered account. Email is the unique key. The password is
// stored as the user typed it: this is a local, single-household
// organizer with no security guarantees.
type User struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Registered time.Time `json:"registered"`
}

func (u User) RecordID() string { return u.Email }

func (u User) Validate() error {
	if err := validation.Required("username", u.Username); err != nil {
		return err
	}
	if err := validation.Required("email", u.Email); err != nil {
		return err
	}
	if !strings.Contains(u.Email, "@") {
		return validation.Invalid("email", "must be an email address")
	}
	return validation.Required("password", u.Password)
}

// Session is the current-user record, kept in both storage scopes.
type Session struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Avatar     string `json:"avatar,omitempty"`
}
