package pantry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/smartpantry/pantry/expiry"
	"github.com/smartpantry/pantry/pantry"
	"github.com/smartpantry/pantry/storage"
	"github.com/smartpantry/pantry/types"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func dateOffset(days int) string {
	return types.FormatDate(now.AddDate(0, 0, days))
}

func TestSeeding(t *testing.T) {
	p, dual := newPantry(t)

	t.Run("meal plan grid", func(t *testing.T) {
		slots, err := p.MealPlan()
		if err != nil {
			t.Fatalf("MealPlan: %v", err)
		}
		if len(slots) != len(types.Weekdays)*len(types.MealLabels) {
			t.Fatalf("got %d slots, want %d", len(slots), len(types.Weekdays)*len(types.MealLabels))
		}

		seen := map[string]bool{}
		for _, slot := range slots {
			if slot.Recipe != "" {
				t.Errorf("seeded slot %s/%s has a recipe: %q", slot.Day, slot.Meal, slot.Recipe)
			}
			seen[slot.Day+"/"+slot.Meal] = true
		}
		for _, day := range types.Weekdays {
			for _, meal := range types.MealLabels {
				if !seen[day+"/"+meal] {
					t.Errorf("missing slot %s/%s", day, meal)
				}
			}
		}
	})

	t.Run("starter notes", func(t *testing.T) {
		notes, err := p.ListNotes()
		if err != nil {
			t.Fatalf("ListNotes: %v", err)
		}
		if len(notes) == 0 {
			t.Fatal("no starter notes seeded")
		}
	})

	t.Run("reopen does not reseed", func(t *testing.T) {
		if _, err := p.PlanMeal("Monday", "Dinner", "Baked Salmon"); err != nil {
			t.Fatal(err)
		}
		notes, _ := p.ListNotes()
		if err := p.RemoveNote(notes[0].ID); err != nil {
			t.Fatal(err)
		}

		// A second Pantry over the same store observes the edits, not
		// fresh seeds.
		p2, err := pantry.New(dual)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		slots, _ := p2.MealPlan()
		found := false
		for _, slot := range slots {
			if slot.Day == "Monday" && slot.Meal == "Dinner" {
				found = slot.Recipe == "Baked Salmon"
			}
		}
		if !found {
			t.Error("meal plan edit lost on reopen")
		}
		notes2, _ := p2.ListNotes()
		if len(notes2) != len(notes)-1 {
			t.Errorf("notes were reseeded: %d, want %d", len(notes2), len(notes)-1)
		}
	})
}

func TestFoodLifecycle(t *testing.T) {
	p, _ := newPantry(t)

	item, err := p.AddFood(types.FoodItem{
		Name:           "Milk",
		Category:       "Dairy",
		ExpirationDate: dateOffset(2),
		Quantity:       "1 L",
	})
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	if item.ID == "" {
		t.Fatal("AddFood did not assign an id")
	}

	t.Run("classify", func(t *testing.T) {
		cls := p.Classify(item, now)
		if cls.Status != expiry.StatusExpiringSoon {
			t.Errorf("status = %q, want expiring-soon", cls.Status)
		}
		if cls.Text != "Expires in 2 days" {
			t.Errorf("text = %q", cls.Text)
		}
	})

	t.Run("update replaces all fields", func(t *testing.T) {
		err := p.UpdateFood(item.ID, types.FoodItem{
			Name:           "Oat Milk",
			Category:       "Beverages",
			ExpirationDate: dateOffset(10),
		})
		if err != nil {
			t.Fatalf("UpdateFood: %v", err)
		}
		got, err := p.GetFood(item.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Oat Milk" || got.Category != "Beverages" || got.Quantity != "" {
			t.Errorf("update incomplete: %+v", got)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := p.RemoveFood(item.ID); err != nil {
			t.Fatalf("RemoveFood: %v", err)
		}
		if _, err := p.GetFood(item.ID); !errors.Is(err, pantry.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestQuerySorted(t *testing.T) {
	p, _ := newPantry(t)

	add := func(name, category string, offset int) {
		t.Helper()
		if _, err := p.AddFood(types.FoodItem{
			Name: name, Category: category, ExpirationDate: dateOffset(offset),
		}); err != nil {
			t.Fatal(err)
		}
	}
	add("Pasta", "Grains", 30)
	add("Old Ham", "Meat", -4)
	add("Yogurt", "Dairy", 1)

	t.Run("orders by urgency", func(t *testing.T) {
		items, err := p.QuerySorted("", now)
		if err != nil {
			t.Fatalf("QuerySorted: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("got %d items", len(items))
		}
		if items[0].Name != "Old Ham" || items[1].Name != "Yogurt" || items[2].Name != "Pasta" {
			t.Errorf("wrong order: %s, %s, %s", items[0].Name, items[1].Name, items[2].Name)
		}
	})

	t.Run("filters by term", func(t *testing.T) {
		items, err := p.QuerySorted("dairy", now)
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 1 || items[0].Name != "Yogurt" {
			t.Errorf("got %+v", items)
		}
	})
}

func TestPlanMealUnknownSlot(t *testing.T) {
	p, _ := newPantry(t)

	if _, err := p.PlanMeal("Monday", "Brunch", "Pancakes"); !errors.Is(err, pantry.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := p.PlanMeal("Someday", "Dinner", "Pancakes"); !errors.Is(err, pantry.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestShoppingLifecycle(t *testing.T) {
	p, _ := newPantry(t)

	item, err := p.AddShoppingItem("Coffee beans")
	if err != nil {
		t.Fatalf("AddShoppingItem: %v", err)
	}
	if item.Completed {
		t.Error("new item starts completed")
	}

	toggled, err := p.ToggleShoppingItem(item.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("toggle did not complete the item")
	}
	toggled, err = p.ToggleShoppingItem(item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Completed {
		t.Error("second toggle did not clear the flag")
	}

	if err := p.RemoveShoppingItem(item.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	items, _ := p.ListShopping()
	if len(items) != 0 {
		t.Errorf("list not empty after remove: %+v", items)
	}
}

func TestLegacyFavoritesMigration(t *testing.T) {
	dual := storage.Dual{Session: storage.NewMemory(), Persistent: storage.NewMemory()}
	legacy := `[{"id":"1","name":"Classic Spaghetti","ingredients":["Pasta","Tomato Sauce","Garlic"]}]`
	if err := dual.Persistent.Set(types.KeyLegacyFavorites, []byte(legacy)); err != nil {
		t.Fatal(err)
	}

	p, err := pantry.New(dual)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	notes, err := p.ListNotes()
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1 migrated note (no starter seeds)", len(notes))
	}
	if notes[0].Title != "Classic Spaghetti" {
		t.Errorf("title = %q", notes[0].Title)
	}
	if want := "Ingredients: Pasta, Tomato Sauce, Garlic"; notes[0].Content != want {
		t.Errorf("content = %q, want %q", notes[0].Content, want)
	}

	if _, ok, _ := dual.Persistent.Get(types.KeyLegacyFavorites); ok {
		t.Error("legacy key was not retired")
	}
}

func TestPreferences(t *testing.T) {
	p, dual := newPantry(t)
	prefs := p.Prefs()

	t.Run("defaults", func(t *testing.T) {
		if prefs.Theme() != "light" {
			t.Errorf("default theme = %q", prefs.Theme())
		}
		if prefs.FontSize() != pantry.FontMedium {
			t.Errorf("default font size = %q", prefs.FontSize())
		}
		if prefs.HighContrast() || prefs.ReducedMotion() {
			t.Error("boolean preferences should default to false")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if err := prefs.SetTheme("dark"); err != nil {
			t.Fatal(err)
		}
		if err := prefs.SetFontSize(pantry.FontLarge); err != nil {
			t.Fatal(err)
		}
		if err := prefs.SetHighContrast(true); err != nil {
			t.Fatal(err)
		}
		if prefs.Theme() != "dark" || prefs.FontSize() != pantry.FontLarge || !prefs.HighContrast() {
			t.Error("preferences did not round-trip")
		}
	})

	t.Run("malformed value falls back", func(t *testing.T) {
		if err := dual.Persistent.Set(types.PrefPrefix+"fontSize", []byte(`{bad`)); err != nil {
			t.Fatal(err)
		}
		if prefs.FontSize() != pantry.FontMedium {
			t.Errorf("got %q, want the default", prefs.FontSize())
		}
	})
}
