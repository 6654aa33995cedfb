package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

func validateFormat(f string) error {
	switch f {
	case "json", "table", "quiet":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, table or quiet)", f)
	}
}

func formatJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// output prints v according to --format. table is handled by callers that
// know their columns; here it falls back to JSON.
func output(v any, quietVal string) error {
	if flagFmt == "quiet" {
		fmt.Println(quietVal)
		return nil
	}
	return formatJSON(v)
}
