// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/weiihann/lockoor/trial"
)

// Generate writes a bordered comparison table for the given results.
// The four count columns come first, followed by one column per timing
// key of the first result, in sorted key order. All results are
// expected to share the same key set; a row missing a key renders N/A.
func Generate(w io.Writer, results []trial.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	keys := timingColumns(results[0])

	headers := make([]string, 0, 4+len(keys))
	headers = append(headers, "Readers", "Writers", "Reads", "Updates")
	headers = append(headers, keys...)

	rows := make([][]string, 0, len(results))

	for _, r := range results {
		row := make([]string, 0, len(headers))
		row = append(row,
			strconv.Itoa(r.Readers),
			strconv.Itoa(r.Writers),
			strconv.Itoa(r.Reads),
			strconv.Itoa(r.Updates),
		)

		for _, key := range keys {
			if ms, ok := r.Times[key]; ok {
				row = append(row, fmt.Sprintf("%d ms", ms))
			} else {
				row = append(row, "N/A")
			}
		}

		rows = append(rows, row)
	}

	widths := columnWidths(headers, rows)
	sep := separator(widths)

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, formatRow(headers, widths))
	fmt.Fprintln(w, sep)

	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
		fmt.Fprintln(w, sep)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []trial.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func timingColumns(first trial.Result) []string {
	keys := make([]string, 0, len(first.Times))
	for key := range first.Times {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	return widths
}

func separator(widths []int) string {
	var b strings.Builder

	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}

	b.WriteString("+")

	return b.String()
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder

	for i, cell := range cells {
		fmt.Fprintf(&b, "| %*s ", widths[i], cell)
	}

	b.WriteString("|")

	return b.String()
}
