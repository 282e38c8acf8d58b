package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartpantry/pantry/pantry"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change display preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		prefs := p.Prefs()
		fmt.Printf("theme:          %s\n", prefs.Theme())
		fmt.Printf("fontSize:       %s\n", prefs.FontSize())
		fmt.Printf("highContrast:   %t\n", prefs.HighContrast())
		fmt.Printf("reducedMotion:  %t\n", prefs.ReducedMotion())
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a preference",
	Long: `Change a display preference.

Names and values:
  theme          light | dark
  fontSize       small | medium | large
  highContrast   true | false
  reducedMotion  true | false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		name, value := args[0], args[1]
		prefs := p.Prefs()
		switch name {
		case "theme":
			if value != "light" && value != "dark" {
				return fmt.Errorf("theme must be light or dark")
			}
			return prefs.SetTheme(value)
		case "fontSize":
			switch value {
			case pantry.FontSmall, pantry.FontMedium, pantry.FontLarge:
				return prefs.SetFontSize(value)
			}
			return fmt.Errorf("fontSize must be small, medium, or large")
		case "highContrast", "reducedMotion":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s takes true or false", name)
			}
			if name == "highContrast" {
				return prefs.SetHighContrast(on)
			}
			return prefs.SetReducedMotion(on)
		default:
			return fmt.Errorf("unknown preference %q", name)
		}
	},
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}
