package engine

import (
	"math"
	"sort"
	"strconv"

	"goattrition/domain/core"
	"goattrition/domain/table"
)

// BoxStats is a five-number summary for one group of a boxplot
type BoxStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// BoxplotStats computes per-group five-number summaries of a numeric field
// grouped by a categorical field. Quartiles use linear interpolation and the
// result is independent of row order. Groups without a single usable numeric
// observation are omitted.
func BoxplotStats(view *table.View, groupField, valueField string) (map[string]BoxStats, error) {
	groups, ok := view.Strings(groupField)
	if !ok {
		return nil, core.NewFieldMissingError("boxplot", groupField)
	}
	values, ok := view.Strings(valueField)
	if !ok {
		return nil, core.NewFieldMissingError("boxplot", valueField)
	}

	grouped := make(map[string][]float64)
	for i := range groups {
		if groups[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		grouped[groups[i]] = append(grouped[groups[i]], v)
	}

	result := make(map[string]BoxStats, len(grouped))
	for group, data := range grouped {
		sort.Float64s(data)
		result[group] = BoxStats{
			Count:  len(data),
			Min:    data[0],
			Q1:     quantileLinear(data, 0.25),
			Median: quantileLinear(data, 0.50),
			Q3:     quantileLinear(data, 0.75),
			Max:    data[len(data)-1],
		}
	}
	return result, nil
}
