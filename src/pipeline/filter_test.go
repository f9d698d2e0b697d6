package pipeline

import (
	"errors"
	"testing"
	"time"
)

func TestCombineDayTime(t *testing.T) {
	got, err := CombineDayTime("05-03-2024", "07:30")
	if err != nil {
		t.Fatalf("CombineDayTime: %v", err)
	}
	want := time.Date(2024, time.March, 5, 7, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	// seconds variant accepted
	if _, err := CombineDayTime("05-03-2024", "07:30:15"); err != nil {
		t.Fatalf("seconds clock rejected: %v", err)
	}
	if _, err := CombineDayTime("garbage", "07:30"); err == nil {
		t.Fatalf("expected invalid date error")
	}
	if _, err := CombineDayTime("05-03-2024", "25:99"); err == nil {
		t.Fatalf("expected invalid time error")
	}
}

func hourlyIndex(t *testing.T, hours ...int) IndexedTable {
	t.Helper()
	records := [][]string{{"time", "s1", "s2"}}
	for _, h := range hours {
		records = append(records, []string{
			time.Date(2024, time.March, 5, h, 0, 0, 0, time.Local).Format("02-01-2006 15:04:05"),
			"5", "5",
		})
	}
	it, err := ResolveTimestamps(makeFrame(records), "time")
	if err != nil {
		t.Fatalf("ResolveTimestamps: %v", err)
	}
	return it
}

func TestFilterRangeClosedInterval(t *testing.T) {
	it := hourlyIndex(t, 6, 7, 8, 9, 10, 11)
	start := time.Date(2024, time.March, 5, 7, 0, 0, 0, time.Local)
	end := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)

	ft, swapped, err := FilterRange(it, start, end)
	if err != nil {
		t.Fatalf("FilterRange: %v", err)
	}
	if swapped {
		t.Fatalf("bounds were in order, swap reported")
	}
	// both endpoints included
	if ft.Len() != 4 {
		t.Fatalf("len=%d want 4", ft.Len())
	}
	if !ft.Times[0].Equal(start) || !ft.Times[ft.Len()-1].Equal(end) {
		t.Fatalf("endpoints excluded: %v .. %v", ft.Times[0], ft.Times[ft.Len()-1])
	}
}

func TestFilterRangeSwapsInvertedBounds(t *testing.T) {
	it := hourlyIndex(t, 6, 7, 8, 9, 10)
	start := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.Local)
	end := time.Date(2024, time.March, 5, 7, 0, 0, 0, time.Local)

	fwd, _, err := FilterRange(it, end, start)
	if err != nil {
		t.Fatalf("FilterRange: %v", err)
	}
	rev, swapped, err := FilterRange(it, start, end)
	if err != nil {
		t.Fatalf("FilterRange inverted: %v", err)
	}
	if !swapped {
		t.Fatalf("inverted bounds not reported as swapped")
	}
	if rev.Len() != fwd.Len() {
		t.Fatalf("inverted window len=%d, ordered len=%d", rev.Len(), fwd.Len())
	}
	for i := range fwd.Times {
		if !fwd.Times[i].Equal(rev.Times[i]) {
			t.Fatalf("inverted window differs at %d", i)
		}
	}
}

func TestFilterRangeEmptyWindow(t *testing.T) {
	it := hourlyIndex(t, 6, 7, 8)
	start := time.Date(2024, time.March, 6, 7, 0, 0, 0, time.Local)
	end := time.Date(2024, time.March, 6, 19, 0, 0, 0, time.Local)
	ft, _, err := FilterRange(it, start, end)
	if err != nil {
		t.Fatalf("empty window must not be an error, got %v", err)
	}
	if ft.Len() != 0 {
		t.Fatalf("len=%d want 0", ft.Len())
	}
}

func TestFilterRangeEmptyIndex(t *testing.T) {
	// every timestamp malformed, so the index has no rows
	df := makeFrame([][]string{
		{"time", "s1"},
		{"bogus", "1"},
		{"also bogus", "2"},
	})
	it, err := ResolveTimestamps(df, "time")
	if err != nil {
		t.Fatalf("ResolveTimestamps: %v", err)
	}
	if it.Dropped != 2 {
		t.Fatalf("dropped=%d want 2", it.Dropped)
	}
	_, _, err = FilterRange(it, time.Now(), time.Now())
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("err=%v want ErrNoRows", err)
	}
}
