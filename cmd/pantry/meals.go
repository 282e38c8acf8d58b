package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartpantry/pantry/types"
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Show the weekly meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		slots, err := p.MealPlan()
		if err != nil {
			return err
		}
		return render(slots,
			[]string{"DAY", "MEAL", "RECIPE"},
			func(slot types.MealPlanSlot) []string {
				recipe := slot.Recipe
				if recipe == "" {
					recipe = "-"
				}
				return []string{slot.Day, slot.Meal, recipe}
			})
	},
}

var mealsSetCmd = &cobra.Command{
	Use:   "set <day> <meal> [recipe]",
	Short: "Plan (or clear) a meal slot",
	Long: `Write a recipe into one slot of the weekly grid. The grid is fixed at
seven days of ` + strings.Join(types.MealLabels, ", ") + `; slots can be
edited but not added or removed. Omit the recipe to clear the slot.

Examples:
  pantry meals set Monday Dinner "Baked Salmon"
  pantry meals set monday dinner`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		day := titleCase(args[0])
		meal := titleCase(args[1])
		recipe := ""
		if len(args) == 3 {
			recipe = args[2]
		}

		slot, err := p.PlanMeal(day, meal, recipe)
		if err != nil {
			return err
		}
		if slot.Recipe == "" {
			fmt.Printf("Cleared %s %s.\n", slot.Day, slot.Meal)
		} else {
			fmt.Printf("%s %s: %s\n", slot.Day, slot.Meal, slot.Recipe)
		}
		return nil
	},
}

// titleCase folds user input like "monday" onto the stored "Monday".
func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func init() {
	mealsCmd.AddCommand(mealsSetCmd)
	rootCmd.AddCommand(mealsCmd)
}
