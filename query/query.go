// Package query filters and orders food items for display. It composes
// the pure classification rules from package expiry; it never touches
// storage, so it is testable with plain slices and a fixed clock.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/smartpantry/pantry/expiry"
	"github.com/smartpantry/pantry/types"
)

// Filter returns the items whose name or category contains term,
// case-insensitively. An empty term matches everything. The result is
// always a fresh slice, never an alias of the input.
func Filter(items []types.FoodItem, term string) []types.FoodItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]types.FoodItem, len(items))
		copy(out, items)
		return out
	}

	var out []types.FoodItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Category), term) {
			out = append(out, item)
		}
	}
	return out
}

// SortByUrgency orders items expired first, then expiring-soon, then
// fresh, and within a status ascending by expiration date. The sort is
// stable: items with the same status and date keep their input order.
// The input slice is not modified.
func SortByUrgency(items []types.FoodItem, now time.Time) []types.FoodItem {
	sorted := make([]types.FoodItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := expiresAt(sorted[i]), expiresAt(sorted[j])
		pi := expiry.Classify(di, now).Status.Priority()
		pj := expiry.Classify(dj, now).Status.Priority()
		if pi != pj {
			return pi < pj
		}
		return di.Before(dj)
	})
	return sorted
}

// Search applies the substring filter, then the urgency ordering. This
// is the composition every listing uses.
func Search(items []types.FoodItem, term string, now time.Time) []types.FoodItem {
	return SortByUrgency(Filter(items, term), now)
}

// expiresAt parses an item's date for comparison. Validation keeps
// unparseable dates out of the store; if one slips through it sorts as
// long expired rather than failing the whole listing.
func expiresAt(item types.FoodItem) time.Time {
	t, err := item.ExpiresAt()
	if err != nil {
		return time.Time{}
	}
	return t
}
