package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/ruchitsaxena275/scb-analyzer/src/table"
)

// DefaultStringCount is how many numeric columns are offered as the default
// selection; combiner boxes in this fleet carry up to 18 strings.
const DefaultStringCount = 18

// StringColumns returns the numeric columns available as string-current
// candidates, excluding the timestamp column. Fails with
// ErrNoNumericColumns when there are none, regardless of row count.
func StringColumns(df dataframe.DataFrame, tsColumn string) ([]string, error) {
	cols := table.NumericColumns(df, tsColumn)
	if len(cols) == 0 {
		return nil, ErrNoNumericColumns
	}
	return cols, nil
}

// DefaultStrings picks the first DefaultStringCount candidates.
func DefaultStrings(candidates []string) []string {
	if len(candidates) <= DefaultStringCount {
		return candidates
	}
	return candidates[:DefaultStringCount]
}

// ValidateSelection checks an operator override against the candidate set.
// Selection order is preserved as given. An empty selection is fatal.
func ValidateSelection(selected, candidates []string) error {
	if len(selected) == 0 {
		return ErrNoSelection
	}
	valid := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		valid[c] = true
	}
	for _, s := range selected {
		if !valid[s] {
			return fmt.Errorf("column %q is not a numeric column of the table", s)
		}
	}
	return nil
}
