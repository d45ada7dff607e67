package engine

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"goattrition/domain/core"
	"goattrition/domain/table"
)

// Summary holds descriptive statistics for one numeric field of a view
type Summary struct {
	Field  string  `json:"field"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// NumericSummary computes descriptive statistics over the parseable values
// of a field. A view with zero usable observations yields a zero-count
// summary, not an error; only a field absent from the dataset is an error.
func NumericSummary(view *table.View, field string) (Summary, error) {
	data, ok := view.Floats(field)
	if !ok {
		return Summary{}, core.NewFieldMissingError("numeric summary", field)
	}
	if len(data) == 0 {
		return Summary{Field: field}, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return Summary{
		Field:  field,
		Count:  len(data),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q1:     quantileLinear(sorted, 0.25),
		Median: median,
		Q3:     quantileLinear(sorted, 0.75),
		Max:    max,
	}, nil
}

// quantileLinear computes the p-quantile of sorted data with linear
// interpolation between order statistics (h = (n-1)p).
func quantileLinear(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
