package engine

import (
	"goattrition/domain/core"
	"goattrition/domain/table"
)

// Rate holds counts and percentages of a two-valued (or small categorical)
// label over a view.
type Rate struct {
	Total   int                `json:"total"`
	Counts  map[string]int     `json:"counts"`
	Percent map[string]float64 `json:"percent"`
}

// Distribution counts the non-missing values of a field in the view.
// Returns core.ErrFieldMissing when the field is absent from the dataset;
// a zero-row view yields an empty mapping, not an error.
func Distribution(view *table.View, field string) (map[string]int, error) {
	values, ok := view.Strings(field)
	if !ok {
		return nil, core.NewFieldMissingError("distribution", field)
	}
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}
	return counts, nil
}

// AttritionRate computes the overall share of each attrition label in the
// view. Percentages sum to 100 for a non-empty view.
func AttritionRate(view *table.View, attritionField string) (Rate, error) {
	counts, err := Distribution(view, attritionField)
	if err != nil {
		return Rate{}, core.NewFieldMissingError("attrition rate", attritionField)
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	percent := make(map[string]float64, len(counts))
	for label, c := range counts {
		percent[label] = 100 * float64(c) / float64(total)
	}
	return Rate{Total: total, Counts: counts, Percent: percent}, nil
}

// CrossTabCounts builds a contingency table of a categorical field against
// the attrition label: category -> attrition value -> row count. Rows with a
// missing value on either side are not counted.
func CrossTabCounts(view *table.View, field, attritionField string) (map[string]map[string]int, error) {
	categories, ok := view.Strings(field)
	if !ok {
		return nil, core.NewFieldMissingError("crosstab", field)
	}
	labels, ok := view.Strings(attritionField)
	if !ok {
		return nil, core.NewFieldMissingError("crosstab", attritionField)
	}

	counts := make(map[string]map[string]int)
	for i := range categories {
		category, label := categories[i], labels[i]
		if category == "" || label == "" {
			continue
		}
		if counts[category] == nil {
			counts[category] = make(map[string]int)
		}
		counts[category][label]++
	}
	return counts, nil
}

// CrossTabRate row-normalizes the contingency table so each category's
// percentages sum to 100. Labels observed anywhere in the view appear in
// every category (at 0.0 where unobserved); categories with zero counted
// rows are omitted entirely rather than emitted as NaN.
func CrossTabRate(view *table.View, field, attritionField string) (map[string]map[string]float64, error) {
	counts, err := CrossTabCounts(view, field, attritionField)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]struct{})
	for _, row := range counts {
		for label := range row {
			labels[label] = struct{}{}
		}
	}

	rates := make(map[string]map[string]float64, len(counts))
	for category, row := range counts {
		total := 0
		for _, c := range row {
			total += c
		}
		if total == 0 {
			continue
		}
		rates[category] = make(map[string]float64, len(labels))
		for label := range labels {
			rates[category][label] = 100 * float64(row[label]) / float64(total)
		}
	}
	return rates, nil
}
