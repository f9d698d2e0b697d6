package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Layouts for the operator-facing window controls.
const (
	DateLayout  = "02-01-2006"
	ClockLayout = "15:04"
)

// Default time-of-day window: roughly sunrise to sunset, when string
// currents are meaningful.
const (
	DefaultStartClock = "07:00"
	DefaultEndClock   = "19:00"
)

// CombineDayTime builds an instant from a day-first date string and a
// HH:MM clock string.
func CombineDayTime(date, clock string) (time.Time, error) {
	d, ok := ParseDayFirst(strings.TrimSpace(date))
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	c, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.Local), nil
}

func parseClock(clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", clock)
}

// FilteredTable is the contiguous sub-range of an IndexedTable whose key
// lies in the closed window. It may be empty; downstream stages handle that.
type FilteredTable struct {
	Data   dataframe.DataFrame
	Column string
	Rows   []int
	Times  []time.Time
	Labels []string
}

// Len returns the number of samples in the window.
func (ft FilteredTable) Len() int { return len(ft.Rows) }

// FilterRange slices the indexed table to [start, end]. Inverted bounds are
// swapped rather than rejected; the second return reports that so the caller
// can warn. Fails with ErrNoRows when the index is empty (for example when
// every timestamp was malformed). An empty window result is not an error.
func FilterRange(it IndexedTable, start, end time.Time) (FilteredTable, bool, error) {
	if len(it.Rows) == 0 {
		return FilteredTable{}, false, ErrNoRows
	}
	swapped := false
	if end.Before(start) {
		start, end = end, start
		swapped = true
	}
	lo := sort.Search(len(it.Times), func(i int) bool { return !it.Times[i].Before(start) })
	hi := sort.Search(len(it.Times), func(i int) bool { return it.Times[i].After(end) })

	ft := FilteredTable{Data: it.Data, Column: it.Column}
	if lo < hi {
		ft.Rows = it.Rows[lo:hi]
		ft.Times = it.Times[lo:hi]
		ft.Labels = it.Labels[lo:hi]
	}
	return ft, swapped, nil
}
