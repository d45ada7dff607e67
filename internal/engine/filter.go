// Package engine implements the dataset filter and aggregation operations.
// Every operation is a pure function of a read-only view: nothing here
// mutates a dataset, spawns goroutines, or caches results.
package engine

import (
	"strconv"
	"strings"

	"goattrition/domain/filter"
	"goattrition/domain/table"
)

// includePredicate keeps rows whose cell is a member of the inclusion set
type includePredicate struct {
	col int
	set map[string]struct{}
}

// rangePredicate keeps rows whose cell parses into the inclusive interval
type rangePredicate struct {
	col int
	rng filter.Range
}

// Apply evaluates a filter specification against a dataset and returns the
// view of rows satisfying every active predicate.
//
// Predicates referencing fields absent from the dataset are skipped (treated
// as always-true), never an error: filters degrade gracefully while direct
// field queries fail loudly. An all-rows-excluded result is a valid view.
// Output row order equals input row order.
func Apply(ds *table.Dataset, spec filter.Spec) *table.View {
	var includes []includePredicate
	for field := range spec.Include {
		col := ds.FieldIndex(field)
		if col < 0 {
			continue // feature unavailable, predicate skipped
		}
		set, _ := spec.IncludeSet(field)
		includes = append(includes, includePredicate{col: col, set: set})
	}

	var ranges []rangePredicate
	for field, rng := range spec.Ranges {
		col := ds.FieldIndex(field)
		if col < 0 {
			continue
		}
		ranges = append(ranges, rangePredicate{col: col, rng: rng})
	}

	var kept []int
	for i, row := range ds.Rows {
		if rowPasses(row, includes, ranges) {
			kept = append(kept, i)
		}
	}
	return ds.ViewOf(kept)
}

func rowPasses(row []string, includes []includePredicate, ranges []rangePredicate) bool {
	for _, p := range includes {
		value := strings.TrimSpace(row[p.col])
		if _, ok := p.set[value]; !ok {
			return false
		}
	}
	for _, p := range ranges {
		value := strings.TrimSpace(row[p.col])
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			// missing or non-numeric cells never satisfy a range predicate
			return false
		}
		if !p.rng.Contains(f) {
			return false
		}
	}
	return true
}
