package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smartpantry/pantry/types"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the food inventory",
}

var (
	itemCategory string
	itemExpires  string
	itemQuantity string
	itemNotes    string
)

var itemsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a food item",
	Long: `Add a food item to the inventory.

Category must be one of: ` + strings.Join(types.FoodCategories, ", ") + `.

Examples:
  pantry items add "Milk" --category Dairy --expires 2026-09-04
  pantry items add "Chicken" --category Meat --expires 2026-09-01 --quantity "1 kg"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		item, err := p.AddFood(types.FoodItem{
			Name:           args[0],
			Category:       itemCategory,
			ExpirationDate: itemExpires,
			Quantity:       itemQuantity,
			Notes:          itemNotes,
		})
		if err != nil {
			return err
		}

		cls := p.Classify(item, time.Now())
		slog.Info("food item added", "id", item.ID, "name", item.Name)
		fmt.Printf("Added %s (%s). %s.\n", item.Name, item.Category, cls.Text)
		return nil
	},
}

var itemsSearch string

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inventory, most urgent first",
	Long: `List the inventory sorted by urgency: expired items first, then
items expiring within three days, then fresh items, by expiration date
within each band. --search matches name or category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		now := time.Now()
		items, err := p.QuerySorted(itemsSearch, now)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No items in inventory. Add some food items to get started!")
			return nil
		}

		type row struct {
			types.FoodItem
			Status string `json:"status" yaml:"status"`
			Text   string `json:"statusText" yaml:"statusText"`
		}
		rows := make([]row, 0, len(items))
		for _, item := range items {
			cls := p.Classify(item, now)
			rows = append(rows, row{FoodItem: item, Status: string(cls.Status), Text: cls.Text})
		}
		return render(rows,
			[]string{"ID", "NAME", "CATEGORY", "EXPIRES", "STATUS"},
			func(r row) []string {
				return []string{shortID(r.ID), r.Name, r.Category, r.ExpirationDate, r.Text}
			})
	},
}

var itemsUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Replace a food item's fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		id, err := resolveFoodID(p, args[0])
		if err != nil {
			return err
		}
		if err := p.UpdateFood(id, types.FoodItem{
			Name:           args[1],
			Category:       itemCategory,
			ExpirationDate: itemExpires,
			Quantity:       itemQuantity,
			Notes:          itemNotes,
		}); err != nil {
			return err
		}
		fmt.Printf("Updated %s.\n", args[1])
		return nil
	},
}

var itemsRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a food item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		id, err := resolveFoodID(p, args[0])
		if err != nil {
			return err
		}
		if err := p.RemoveFood(id); err != nil {
			return err
		}
		fmt.Println("Item removed from inventory.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{itemsAddCmd, itemsUpdateCmd} {
		c.Flags().StringVarP(&itemCategory, "category", "c", "", "Food category")
		c.Flags().StringVarP(&itemExpires, "expires", "e", "", "Expiration date (YYYY-MM-DD)")
		c.Flags().StringVarP(&itemQuantity, "quantity", "q", "", "Quantity, free text")
		c.Flags().StringVarP(&itemNotes, "notes", "n", "", "Notes, free text")
		_ = c.MarkFlagRequired("category")
		_ = c.MarkFlagRequired("expires")
	}
	itemsListCmd.Flags().StringVarP(&itemsSearch, "search", "s", "", "Filter by name or category substring")

	itemsCmd.AddCommand(itemsAddCmd, itemsListCmd, itemsUpdateCmd, itemsRemoveCmd)
	rootCmd.AddCommand(itemsCmd)
}
