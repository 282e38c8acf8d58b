package main

import (
	"fmt"
	"strings"

	"github.com/smartpantry/pantry/pantry"
)

// shortID abbreviates a UUID for table output; any unique prefix is
// accepted back as an argument.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID matches arg against ids, exactly or as a unique prefix.
func resolveID(ids []string, arg string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no record matches id %q", arg)
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func resolveFoodID(p *pantry.Pantry, arg string) (string, error) {
	items, err := p.ListFood()
	if err != nil {
		return "", err
	}
	return resolveID(recordIDs(items), arg)
}

func resolveShoppingID(p *pantry.Pantry, arg string) (string, error) {
	items, err := p.ListShopping()
	if err != nil {
		return "", err
	}
	return resolveID(recordIDs(items), arg)
}

func resolveNoteID(p *pantry.Pantry, arg string) (string, error) {
	notes, err := p.ListNotes()
	if err != nil {
		return "", err
	}
	return resolveID(recordIDs(notes), arg)
}

func recordIDs[T pantry.Record](records []T) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.RecordID())
	}
	return ids
}
