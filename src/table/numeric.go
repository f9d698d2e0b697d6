package table

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NumericColumns returns the names of columns holding numeric values, in
// table order, skipping any excluded names (typically the timestamp column).
func NumericColumns(df dataframe.DataFrame, exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	names := df.Names()
	types := df.Types()
	out := make([]string, 0, len(names))
	for i, name := range names {
		if skip[name] {
			continue
		}
		switch types[i] {
		case series.Int, series.Float:
			out = append(out, name)
		}
	}
	return out
}
