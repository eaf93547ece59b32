// Package summary renders the final report out of per-source results.
package summary

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vyskocilm/tally/internal/model"
)

// Format renders one line per result, in the given order, followed by a
// synthetic "Total" line when more than one result is present. Requested
// metrics are deduplicated and shown in the canonical order (lines, words,
// chars, bytes) no matter how the flags were ordered.
//
// Every number is right-aligned to a single shared width: the decimal width
// of the largest displayed value across all rows and metrics. Each row ends
// with a single space and the result label, so a row for the anonymous
// standard input ends with a trailing space. No trailing newline is added,
// the caller appends one when printing.
func Format(results []model.Result, metrics []model.Metric) string {
	if len(results) == 0 || len(metrics) == 0 {
		return ""
	}

	metrics = slices.Clone(metrics)
	slices.Sort(metrics)
	metrics = slices.Compact(metrics)

	if len(results) > 1 {
		total := model.Result{Summary: model.TotalSummary}
		for _, res := range results {
			total.Add(res)
		}
		results = append(slices.Clone(results), total)
	}

	counts := make([][]uint64, len(results))
	width := 1
	for i, res := range results {
		row := make([]uint64, len(metrics))
		for j, m := range metrics {
			row[j] = res.Value(m)
			if l := len(strconv.FormatUint(row[j], 10)); l > width {
				width = l
			}
		}
		counts[i] = row
	}

	var sb strings.Builder
	for i, row := range counts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, count := range row {
			fmt.Fprintf(&sb, "%*d ", width, count)
		}
		sb.WriteString(results[i].Summary)
	}
	return sb.String()
}
