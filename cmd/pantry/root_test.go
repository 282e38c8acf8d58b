package main

import "testing"

func TestEnvOverridesConfig(t *testing.T) {
	// Hyphenated keys map to underscored env names: data-dir is set
	// through PANTRY_DATA_DIR.
	t.Setenv("PANTRY_DATA_DIR", "/tmp/pantry-env-test")
	if got := cfg.GetString("data-dir"); got != "/tmp/pantry-env-test" {
		t.Errorf("data-dir = %q, want the env value", got)
	}

	t.Setenv("PANTRY_FORMAT", "json")
	if got := cfg.GetString("format"); got != "json" {
		t.Errorf("format = %q, want json", got)
	}
}

func TestDataDirPrefersConfiguredValue(t *testing.T) {
	t.Setenv("PANTRY_DATA_DIR", "/tmp/pantry-env-test")
	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir: %v", err)
	}
	if dir != "/tmp/pantry-env-test" {
		t.Errorf("dataDir = %q, want the configured value", dir)
	}
}
