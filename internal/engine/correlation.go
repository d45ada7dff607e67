package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"goattrition/domain/table"
)

// Correlation is a symmetric Pearson correlation matrix over the numeric
// fields of a view, with two-sided p-values from the t-distribution.
//
// Applicable is false when fewer than two numeric fields carry more than one
// observation; the matrix is then absent rather than degenerate. Entries for
// pairs with too few complete observations, or for zero-variance fields, are
// NaN.
type Correlation struct {
	Applicable bool        `json:"applicable"`
	Fields     []string    `json:"fields,omitempty"`
	R          [][]float64 `json:"r,omitempty"`
	P          [][]float64 `json:"p,omitempty"`
}

// CorrelationMatrix computes pairwise Pearson correlations over the numeric
// fields of the view, using pairwise-complete observations for each pair.
func CorrelationMatrix(view *table.View) Correlation {
	var fields []string
	for _, name := range view.Dataset().NumericFields() {
		values, _ := view.Floats(name)
		if len(values) > 1 {
			fields = append(fields, name)
		}
	}
	if len(fields) < 2 {
		return Correlation{Applicable: false}
	}

	n := len(fields)
	r := make([][]float64, n)
	p := make([][]float64, n)
	for i := range r {
		r[i] = make([]float64, n)
		p[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		xs, _ := view.Floats(fields[i])
		r[i][i] = stat.Correlation(xs, xs, nil)
		p[i][i] = 0
		if math.IsNaN(r[i][i]) {
			p[i][i] = math.NaN()
		}
		for j := i + 1; j < n; j++ {
			xs, ys, _ := view.PairedFloats(fields[i], fields[j])
			rho := pearson(xs, ys)
			pv := correlationPValue(rho, len(xs))
			r[i][j], r[j][i] = rho, rho
			p[i][j], p[j][i] = pv, pv
		}
	}
	return Correlation{Applicable: true, Fields: fields, R: r, P: p}
}

func pearson(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	rho := stat.Correlation(xs, ys, nil)
	// Clamp to [-1, 1] range (due to floating point precision)
	if rho > 1.0 {
		rho = 1.0
	} else if rho < -1.0 {
		rho = -1.0
	}
	return rho
}

// correlationPValue computes the two-sided p-value for a Pearson r via the
// exact Student's t-distribution.
func correlationPValue(rho float64, sampleSize int) float64 {
	if math.IsNaN(rho) {
		return math.NaN()
	}
	if sampleSize < 3 {
		return 1.0
	}
	if rho == 1.0 || rho == -1.0 {
		return 0
	}

	df := float64(sampleSize - 2)
	tStatistic := rho * math.Sqrt(df/(1-rho*rho))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	// Two-tailed test
	return 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
}
