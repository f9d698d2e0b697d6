// Package pipeline implements the transformation steps between the loaded
// table and the rendered heatmap: timestamp resolution, range filtering,
// string-column selection and the ratio computation. Every step takes its
// parameters explicitly and derives a new value; nothing is shared or
// mutated between stages.
package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// dayFirstLayouts are tried in order. Day-first forms come before ISO forms
// so "05-03-2024" resolves to 5 March, never May 3.
var dayFirstLayouts = []string{
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDayFirst parses a timestamp cell using day-first interpretation.
// The second return is false when no accepted pattern matches.
func ParseDayFirst(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IndexedTable is the raw table with one column promoted to a sorted
// temporal key. Rows holds indices into Data in ascending key order; rows
// whose key failed to parse are absent. Duplicate keys are kept, and the
// stable sort preserves their load order.
type IndexedTable struct {
	Data    dataframe.DataFrame
	Column  string
	Rows    []int
	Times   []time.Time // aligned with Rows, non-decreasing
	Labels  []string    // raw cell text per row, aligned with Rows
	Dropped int         // rows removed as unparseable
}

// ResolveTimestamps promotes the chosen column to the table's ordering key.
// Unparseable rows are dropped; the caller reports Dropped as a non-fatal
// message. Fails with ErrNoColumns on a zero-column table.
func ResolveTimestamps(df dataframe.DataFrame, column string) (IndexedTable, error) {
	if df.Ncol() == 0 {
		return IndexedTable{}, ErrNoColumns
	}
	col := df.Col(column)
	if col.Err != nil {
		return IndexedTable{}, fmt.Errorf("timestamp column %q: %w", column, col.Err)
	}
	records := col.Records()

	it := IndexedTable{Data: df, Column: column}
	for i, rec := range records {
		t, ok := ParseDayFirst(rec)
		if !ok {
			it.Dropped++
			continue
		}
		it.Rows = append(it.Rows, i)
		it.Times = append(it.Times, t)
		it.Labels = append(it.Labels, rec)
	}

	order := make([]int, len(it.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return it.Times[order[a]].Before(it.Times[order[b]]) })

	rows := make([]int, len(order))
	times := make([]time.Time, len(order))
	labels := make([]string, len(order))
	for i, o := range order {
		rows[i] = it.Rows[o]
		times[i] = it.Times[o]
		labels[i] = it.Labels[o]
	}
	it.Rows, it.Times, it.Labels = rows, times, labels
	return it, nil
}

// DistinctDates returns the sorted unique calendar dates present in the
// index, formatted day-first. The viewer uses them to bound its date pickers
// to the data's observed range.
func DistinctDates(it IndexedTable) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range it.Times {
		d := t.Format(DateLayout)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	// Times are sorted, so dates already come out in ascending order.
	return out
}
