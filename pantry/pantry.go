// Package pantry ties the record store, the domain collections, and the
// session gate together behind the surface the presentation layer
// consumes: list/add/update/remove per collection, classification and
// urgency-ordered search for food items, and sign-up/sign-in.
//
// The package holds no ambient state. A Pantry is built from an
// explicit storage.Dual and everything flows through it, which keeps
// the classification and query logic pure and the repositories
// swappable in tests.
package pantry

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartpantry/pantry/expiry"
	"github.com/smartpantry/pantry/query"
	"github.com/smartpantry/pantry/storage"
	"github.com/smartpantry/pantry/types"
)

// StoreFileName is the persistent scope's file name inside the data dir.
const StoreFileName = "pantry.json"

// Pantry is the root of the domain layer: one collection per record
// type, the session gate, and the preference accessors, all bound to
// one dual-scope store.
type Pantry struct {
	store storage.Dual

	food     *Collection[types.FoodItem]
	shopping *Collection[types.ShoppingItem]
	meals    *Collection[types.MealPlanSlot]
	notes    *Collection[types.RecipeNote]
	users    *Collection[types.User]
	sessions *sessionStore
	prefs    *Preferences

	// now is the clock used for registration timestamps; tests
	// replace it.
	now func() time.Time
}

// New builds a Pantry over the given store, seeding the meal plan and
// recipe notes collections if they are empty and migrating any legacy
// favorite-recipes data.
func New(store storage.Dual) (*Pantry, error) {
	p := &Pantry{
		store:    store,
		food:     NewCollection[types.FoodItem](store.Persistent, types.KeyFoodItems),
		shopping: NewCollection[types.ShoppingItem](store.Persistent, types.KeyShoppingItems),
		meals:    NewCollection[types.MealPlanSlot](store.Persistent, types.KeyMealPlans),
		notes:    NewCollection[types.RecipeNote](store.Persistent, types.KeyRecipeNotes),
		users:    NewCollection[types.User](store.Persistent, types.KeyUsers),
		sessions: &sessionStore{store: store},
		prefs:    &Preferences{kv: store.Persistent},
		now:      time.Now,
	}

	if err := p.migrateLegacyFavorites(); err != nil {
		return nil, err
	}

	seeds, err := loadSeeds()
	if err != nil {
		return nil, err
	}
	if err := p.meals.EnsureSeeded(seeds.MealPlans); err != nil {
		return nil, fmt.Errorf("seed meal plans: %w", err)
	}
	if err := p.notes.EnsureSeeded(seeds.RecipeNotes); err != nil {
		return nil, fmt.Errorf("seed recipe notes: %w", err)
	}

	return p, nil
}

// Open builds a Pantry over a file-backed persistent scope inside dir
// and a fresh process-lifetime session scope.
func Open(dir string) (*Pantry, error) {
	file, err := storage.NewFile(filepath.Join(dir, StoreFileName))
	if err != nil {
		return nil, err
	}
	return New(storage.Dual{Session: storage.NewMemory(), Persistent: file})
}

// Close releases the underlying store.
func (p *Pantry) Close() error { return p.store.Close() }

// Prefs exposes the stored preferences.
func (p *Pantry) Prefs() *Preferences { return p.prefs }

// --- Food inventory ---

// ListFood returns the inventory in insertion order.
func (p *Pantry) ListFood() ([]types.FoodItem, error) {
	return p.food.LoadAll()
}

// AddFood validates and stores a new item, assigning its id.
func (p *Pantry) AddFood(item types.FoodItem) (types.FoodItem, error) {
	item.ID = uuid.NewString()
	if err := p.food.Add(item); err != nil {
		return types.FoodItem{}, err
	}
	return item, nil
}

// UpdateFood replaces every field of the item with the given id.
func (p *Pantry) UpdateFood(id string, item types.FoodItem) error {
	item.ID = id
	return p.food.Update(id, item)
}

// RemoveFood deletes an item.
func (p *Pantry) RemoveFood(id string) error {
	return p.food.Remove(id)
}

// GetFood returns a single item by id.
func (p *Pantry) GetFood(id string) (types.FoodItem, error) {
	return p.food.Get(id)
}

// Classify derives the expiration status and display text for an item
// relative to now.
func (p *Pantry) Classify(item types.FoodItem, now time.Time) expiry.Classification {
	t, err := item.ExpiresAt()
	if err != nil {
		t = time.Time{}
	}
	return expiry.Classify(t, now)
}

// QuerySorted filters the inventory by term and orders it by urgency:
// expired first, then expiring soon, then fresh, date ascending within
// each band.
func (p *Pantry) QuerySorted(term string, now time.Time) ([]types.FoodItem, error) {
	items, err := p.food.LoadAll()
	if err != nil {
		return nil, err
	}
	return query.Search(items, term, now), nil
}

// --- Shopping list ---

// ListShopping returns the shopping list in insertion order.
func (p *Pantry) ListShopping() ([]types.ShoppingItem, error) {
	return p.shopping.LoadAll()
}

// AddShoppingItem appends a new, uncompleted entry.
func (p *Pantry) AddShoppingItem(name string) (types.ShoppingItem, error) {
	item := types.ShoppingItem{ID: uuid.NewString(), Name: name}
	if err := p.shopping.Add(item); err != nil {
		return types.ShoppingItem{}, err
	}
	return item, nil
}

// ToggleShoppingItem flips an entry's completed flag.
func (p *Pantry) ToggleShoppingItem(id string) (types.ShoppingItem, error) {
	item, err := p.shopping.Get(id)
	if err != nil {
		return types.ShoppingItem{}, err
	}
	item.Completed = !item.Completed
	if err := p.shopping.Update(id, item); err != nil {
		return types.ShoppingItem{}, err
	}
	return item, nil
}

// RemoveShoppingItem deletes an entry.
func (p *Pantry) RemoveShoppingItem(id string) error {
	return p.shopping.Remove(id)
}

// --- Meal plan ---

// MealPlan returns the weekly grid in seeded order.
func (p *Pantry) MealPlan() ([]types.MealPlanSlot, error) {
	return p.meals.LoadAll()
}

// PlanMeal writes the recipe into the slot for day and meal. Slots are
// fixed: they can be edited but never added or removed.
func (p *Pantry) PlanMeal(day, meal, recipe string) (types.MealPlanSlot, error) {
	slots, err := p.meals.LoadAll()
	if err != nil {
		return types.MealPlanSlot{}, err
	}
	for _, slot := range slots {
		if slot.Day == day && slot.Meal == meal {
			slot.Recipe = recipe
			if err := p.meals.Update(slot.ID, slot); err != nil {
				return types.MealPlanSlot{}, err
			}
			return slot, nil
		}
	}
	return types.MealPlanSlot{}, fmt.Errorf("no %s slot on %s: %w", meal, day, ErrNotFound)
}

// --- Recipe notes ---

// ListNotes returns the saved notes in insertion order.
func (p *Pantry) ListNotes() ([]types.RecipeNote, error) {
	return p.notes.LoadAll()
}

// AddNote stores a new note. Notes have no in-place edit; replacing one
// is delete and re-create.
func (p *Pantry) AddNote(title, content string) (types.RecipeNote, error) {
	note := types.RecipeNote{ID: uuid.NewString(), Title: title, Content: content}
	if err := p.notes.Add(note); err != nil {
		return types.RecipeNote{}, err
	}
	return note, nil
}

// RemoveNote deletes a note.
func (p *Pantry) RemoveNote(id string) error {
	return p.notes.Remove(id)
}

// --- Legacy migration ---

// legacyFavorite is the retired favorite-recipe shape, a name plus a
// derived ingredients list.
type legacyFavorite struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// migrateLegacyFavorites converts a stored favoriteRecipes collection
// into recipe notes, once, and retires the old key. An existing
// recipeNotes collection always wins.
func (p *Pantry) migrateLegacyFavorites() error {
	notes, err := p.notes.LoadAll()
	if err != nil {
		return err
	}
	if len(notes) > 0 {
		return nil
	}

	var legacy []legacyFavorite
	ok, err := storage.GetJSON(p.store.Persistent, types.KeyLegacyFavorites, &legacy)
	if err != nil {
		return err
	}
	if !ok || len(legacy) == 0 {
		return nil
	}

	converted := make([]types.RecipeNote, 0, len(legacy))
	for _, fav := range legacy {
		converted = append(converted, types.RecipeNote{
			ID:      fav.ID,
			Title:   fav.Name,
			Content: "Ingredients: " + strings.Join(fav.Ingredients, ", "),
		})
	}
	if err := p.notes.SaveAll(converted); err != nil {
		return err
	}
	return p.store.Persistent.Delete(types.KeyLegacyFavorites)
}
