package engine

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"goattrition/domain/core"
	"goattrition/domain/table"
)

// DefaultBins is the bin count used when the caller does not request one
const DefaultBins = 20

// Histogram holds equal-width bin counts for one numeric field.
// Edges has len(Counts)+1 entries; bin i covers [Edges[i], Edges[i+1]),
// except the last bin which also includes the maximum value.
type Histogram struct {
	Field  string    `json:"field"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// GroupedHistogram holds per-group bin counts over a shared set of edges,
// e.g. an age histogram split by attrition label.
type GroupedHistogram struct {
	Field  string           `json:"field"`
	By     string           `json:"by"`
	Edges  []float64        `json:"edges"`
	Groups map[string][]int `json:"groups"`
}

// NewHistogram bins the parseable values of a numeric field into bins
// equal-width intervals spanning [min, max]. A view with no usable values
// yields an empty histogram.
func NewHistogram(view *table.View, field string, bins int) (Histogram, error) {
	data, ok := view.Floats(field)
	if !ok {
		return Histogram{}, core.NewFieldMissingError("histogram", field)
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	if len(data) == 0 {
		return Histogram{Field: field}, nil
	}

	edges := histogramEdges(data, bins)
	counts := make([]int, bins)
	for _, v := range data {
		counts[binIndex(v, edges[0], edges[bins], bins)]++
	}
	return Histogram{Field: field, Edges: edges, Counts: counts}, nil
}

// NewGroupedHistogram bins a numeric field per category of a grouping field,
// with edges shared across groups so the bars are comparable. Rows missing
// the group label or a parseable value are skipped.
func NewGroupedHistogram(view *table.View, field, byField string, bins int) (GroupedHistogram, error) {
	raw, ok := view.Strings(field)
	if !ok {
		return GroupedHistogram{}, core.NewFieldMissingError("histogram", field)
	}
	groups, ok := view.Strings(byField)
	if !ok {
		return GroupedHistogram{}, core.NewFieldMissingError("histogram", byField)
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	type obs struct {
		group string
		value float64
	}
	var all []float64
	var usable []obs
	for i := range raw {
		if groups[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		all = append(all, v)
		usable = append(usable, obs{group: groups[i], value: v})
	}
	if len(all) == 0 {
		return GroupedHistogram{Field: field, By: byField}, nil
	}

	edges := histogramEdges(all, bins)
	counts := make(map[string][]int)
	for _, o := range usable {
		if counts[o.group] == nil {
			counts[o.group] = make([]int, bins)
		}
		counts[o.group][binIndex(o.value, edges[0], edges[bins], bins)]++
	}
	return GroupedHistogram{Field: field, By: byField, Edges: edges, Groups: counts}, nil
}

func histogramEdges(data []float64, bins int) []float64 {
	min := floats.Min(data)
	max := floats.Max(data)
	edges := make([]float64, bins+1)
	floats.Span(edges, min, max)
	return edges
}

// binIndex places a value in [min, max] into one of bins equal-width bins,
// with the maximum value folded into the last bin.
func binIndex(v, min, max float64, bins int) int {
	if max == min {
		return 0
	}
	idx := int(float64(bins) * (v - min) / (max - min))
	if idx >= bins {
		idx = bins - 1
	}
	return idx
}
