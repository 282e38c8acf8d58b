package pantry

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/smartpantry/pantry/types"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	MealPlans   []types.MealPlanSlot `yaml:"mealPlans"`
	RecipeNotes []types.RecipeNote   `yaml:"recipeNotes"`
}

// loadSeeds parses the embedded default data.
func loadSeeds() (seedData, error) {
	var s seedData
	if err := yaml.Unmarshal(seedYAML, &s); err != nil {
		return seedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return s, nil
}
