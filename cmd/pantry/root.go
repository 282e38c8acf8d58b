package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smartpantry/pantry/pantry"
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Smart Pantry - household food inventory from the command line",
	Long: `Pantry keeps a household food inventory, shopping list, weekly meal
plan, and recipe notes in a local JSON store. Nothing leaves your
machine.

Inventory items carry an expiration date and are classified as expired,
expiring soon (within three days), or fresh. Listings always show the
most urgent items first.

Examples:
  pantry register --username ana --email ana@example.com --password secret
  pantry login --email ana@example.com --password secret
  pantry items add "Milk" --category Dairy --expires 2026-09-04
  pantry items list --search dairy
  pantry shop add "Coffee beans"
  pantry meals set Monday Dinner "Baked Salmon"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cfg.GetBool("verbose"))
	},
}

var cfg = viper.New()

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the pantry store (default: user data dir)")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "Output format: table|json|yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr as well as the log file")

	cfg.SetConfigName("config")
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath(configDir())
	cfg.SetEnvPrefix("PANTRY")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.ReadInConfig()

	_ = cfg.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = cfg.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = cfg.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pantry")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pantry")
}

// dataDir resolves where the store file lives: flag, env, config file,
// then the platform user data dir.
func dataDir() (string, error) {
	if dir := cfg.GetString("data-dir"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pantry"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "pantry"), nil
}

// openPantry opens the store for a command invocation.
func openPantry() (*pantry.Pantry, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	p, err := pantry.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open pantry: %w", err)
	}
	return p, nil
}

// requireAuth is the CLI's navigation guard: guarded commands re-check
// the session record and route the user to login when it is missing.
func requireAuth(p *pantry.Pantry) error {
	if !p.IsAuthenticated() {
		return fmt.Errorf("not signed in: run 'pantry login' first")
	}
	return nil
}
