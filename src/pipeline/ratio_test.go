package pipeline

import (
	"math"
	"testing"
	"time"
)

func fullWindow(t *testing.T, records [][]string) FilteredTable {
	t.Helper()
	it, err := ResolveTimestamps(makeFrame(records), "time")
	if err != nil {
		t.Fatalf("ResolveTimestamps: %v", err)
	}
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2100, 1, 1, 0, 0, 0, 0, time.Local)
	ft, _, err := FilterRange(it, start, end)
	if err != nil {
		t.Fatalf("FilterRange: %v", err)
	}
	return ft
}

func TestComputeRatiosZeroTreatedAsOffline(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "s1", "s2", "s3"},
		{"05-03-2024 07:00:00", "10", "0", "10"},
	})
	rt, err := ComputeRatios(ft, []string{"s1", "s2", "s3"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	// the zero reading is excluded from the mean, so expected stays 10
	if rt.Means[0] != 10 {
		t.Fatalf("mean=%v want 10", rt.Means[0])
	}
	if rt.At(0, 0) != 1 || rt.At(0, 2) != 1 {
		t.Fatalf("healthy strings: %v, %v want 1, 1", rt.At(0, 0), rt.At(0, 2))
	}
	if !math.IsNaN(rt.At(0, 1)) {
		t.Fatalf("offline string ratio=%v want NaN", rt.At(0, 1))
	}
}

func TestComputeRatiosAllZeroRow(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "s1", "s2"},
		{"05-03-2024 07:00:00", "0", "0"},
	})
	rt, err := ComputeRatios(ft, []string{"s1", "s2"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	if !math.IsNaN(rt.Means[0]) {
		t.Fatalf("mean=%v want NaN", rt.Means[0])
	}
	for j := 0; j < 2; j++ {
		if !math.IsNaN(rt.At(0, j)) {
			t.Fatalf("ratio[0][%d]=%v want NaN", j, rt.At(0, j))
		}
	}
}

func TestComputeRatiosMeanOfRatiosIsOne(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "s1", "s2", "s3"},
		{"05-03-2024 07:00:00", "4.0", "5.0", "6.0"},
		{"05-03-2024 08:00:00", "8.1", "7.9", "8.0"},
	})
	rt, err := ComputeRatios(ft, []string{"s1", "s2", "s3"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	for i := 0; i < 2; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += rt.At(i, j)
		}
		if math.Abs(sum/3-1) > 1e-9 {
			t.Fatalf("row %d mean ratio %v want 1", i, sum/3)
		}
	}
}

func TestComputeRatiosUnderperformingString(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "s1", "s2", "s3", "s4"},
		{"05-03-2024 12:00:00", "9.0", "9.0", "9.0", "3.0"},
	})
	rt, err := ComputeRatios(ft, []string{"s1", "s2", "s3", "s4"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	// mean = 7.5, weak string reads 0.4 of expected
	if math.Abs(rt.At(0, 3)-0.4) > 1e-9 {
		t.Fatalf("weak string ratio=%v want 0.4", rt.At(0, 3))
	}
	if rt.At(0, 0) <= 1 {
		t.Fatalf("healthy string ratio=%v want >1", rt.At(0, 0))
	}
}

func TestComputeRatiosEndToEnd(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "A", "B", "C"},
		{"05-03-2024 09:00:00", "10", "0", "10"},
		{"05-03-2024 09:05:00", "10", "10", "10"},
		{"05-03-2024 09:10:00", "0", "0", "0"},
	})
	rt, err := ComputeRatios(ft, []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	check := func(i, j int, want float64) {
		t.Helper()
		got := rt.At(i, j)
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Fatalf("ratio[%d][%d]=%v want NaN", i, j, got)
			}
			return
		}
		if got != want {
			t.Fatalf("ratio[%d][%d]=%v want %v", i, j, got, want)
		}
	}
	nan := math.NaN()
	check(0, 0, 1)
	check(0, 1, nan)
	check(0, 2, 1)
	check(1, 0, 1)
	check(1, 1, 1)
	check(1, 2, 1)
	check(2, 0, nan)
	check(2, 1, nan)
	check(2, 2, nan)
	if rt.Means[0] != 10 || rt.Means[1] != 10 || !math.IsNaN(rt.Means[2]) {
		t.Fatalf("means %v want [10 10 NaN]", rt.Means)
	}
}

func TestComputeRatiosEmptyWindow(t *testing.T) {
	ft := fullWindow(t, [][]string{
		{"time", "s1"},
		{"05-03-2024 07:00:00", "5"},
	})
	ft.Rows, ft.Times, ft.Labels = nil, nil, nil
	rt, err := ComputeRatios(ft, []string{"s1"})
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	if !rt.Empty() {
		t.Fatalf("expected empty ratio table")
	}
}

func TestRatioTableEmptyOnNil(t *testing.T) {
	var rt *RatioTable
	if !rt.Empty() {
		t.Fatalf("nil table must report empty")
	}
}
