package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartpantry/pantry/types"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage the shopping list",
}

var shopAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item to the shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		item, err := p.AddShoppingItem(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s to the shopping list.\n", item.Name)
		return nil
	},
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		items, err := p.ListShopping()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No items in shopping list. Add some items to get started!")
			return nil
		}
		return render(items,
			[]string{"ID", "", "NAME"},
			func(item types.ShoppingItem) []string {
				mark := "[ ]"
				if item.Completed {
					mark = "[x]"
				}
				return []string{shortID(item.ID), mark, item.Name}
			})
	},
}

var shopDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle an item's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		id, err := resolveShoppingID(p, args[0])
		if err != nil {
			return err
		}
		item, err := p.ToggleShoppingItem(id)
		if err != nil {
			return err
		}
		if item.Completed {
			fmt.Printf("Checked off %s.\n", item.Name)
		} else {
			fmt.Printf("Unchecked %s.\n", item.Name)
		}
		return nil
	},
}

var shopRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an item from the shopping list",
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

		id, err := resolveShoppingID(p, args[0])
		if err != nil {
			return err
		}
		if err := p.RemoveShoppingItem(id); err != nil {
			return err
		}
		fmt.Println("Item removed from shopping list.")
		return nil
	},
}

func init() {
	shopCmd.AddCommand(shopAddCmd, shopListCmd, shopDoneCmd, shopRemoveCmd)
	rootCmd.AddCommand(shopCmd)
}
