package pantry

import (
	"github.com/smartpantry/pantry/storage"
	"github.com/smartpantry/pantry/types"
)

// Font size preference values.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// Preferences reads and writes the scalar display preferences. They
// live in the persistent scope only, JSON-encoded under the
// smartPantry_* keys. Absent or malformed values fall back to the
// documented defaults; reads never fail.
type Preferences struct {
	kv storage.KV
}

func (p *Preferences) HighContrast() bool {
	return getPref(p.kv, types.PrefPrefix+"highContrast", false)
}

func (p *Preferences) SetHighContrast(on bool) error {
	return storage.SetJSON(p.kv, types.PrefPrefix+"highContrast", on)
}

func (p *Preferences) FontSize() string {
	return getPref(p.kv, types.PrefPrefix+"fontSize", FontMedium)
}

func (p *Preferences) SetFontSize(size string) error {
	return storage.SetJSON(p.kv, types.PrefPrefix+"fontSize", size)
}

func (p *Preferences) ReducedMotion() bool {
	return getPref(p.kv, types.PrefPrefix+"reducedMotion", false)
}

func (p *Preferences) SetReducedMotion(on bool) error {
	return storage.SetJSON(p.kv, types.PrefPrefix+"reducedMotion", on)
}

func (p *Preferences) Theme() string {
	return getPref(p.kv, types.KeyTheme, "light")
}

func (p *Preferences) SetTheme(theme string) error {
	return storage.SetJSON(p.kv, types.KeyTheme, theme)
}

func getPref[T any](kv storage.KV, key string, def T) T {
	v := def
	if ok, err := storage.GetJSON(kv, key, &v); err != nil || !ok {
		return def
	}
	return v
}
