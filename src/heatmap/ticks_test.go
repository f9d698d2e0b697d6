package heatmap

import (
	"testing"
	"time"
)

func TestSampleStride(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 1},
		{1, 1},
		{12, 1},
		{13, 1},
		{24, 2},
		{100, 8},
		{1000, 83},
	}
	for _, c := range cases {
		if got := SampleStride(c.n); got != c.want {
			t.Fatalf("SampleStride(%d)=%d want %d", c.n, got, c.want)
		}
	}
}

func TestSampleIndices(t *testing.T) {
	idx := SampleIndices(100)
	if len(idx) != 13 {
		t.Fatalf("len=%d want 13", len(idx))
	}
	if idx[0] != 0 || idx[1] != 8 || idx[len(idx)-1] != 96 {
		t.Fatalf("indices %v want 0,8,...,96", idx)
	}
	if SampleIndices(0) != nil {
		t.Fatalf("zero samples must give no indices")
	}
	small := SampleIndices(5)
	if len(small) != 5 {
		t.Fatalf("small inputs keep every label, got %v", small)
	}
}

func TestTimeLabel(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 7, 30, 0, 0, time.Local)
	if got := TimeLabel(ts, "raw"); got != "05-03 07:30" {
		t.Fatalf("label %q want 05-03 07:30", got)
	}
	if got := TimeLabel(time.Time{}, "raw cell"); got != "raw cell" {
		t.Fatalf("zero time must fall back to raw text, got %q", got)
	}
}
