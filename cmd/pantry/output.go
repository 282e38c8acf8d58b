package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// render writes rows in the configured output format. rows must be a
// JSON/YAML-encodable value; header and toRow drive the table form.
func render[T any](rows []T, header []string, toRow func(T) []string) error {
	switch format := cfg.GetString("format"); format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(rows)
	case "table", "":
		return renderTable(rows, header, toRow)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or yaml)", format)
	}
}

func renderTable[T any](rows []T, header []string, toRow func(T) []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(toRow(row), "\t"))
	}
	return w.Flush()
}
