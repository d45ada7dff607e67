package table

import (
	"math"
	"strconv"
	"strings"
)

// View is a read-only subset of a dataset's rows. It owns nothing beyond the
// row selection and never mutates the source dataset, so any number of views
// over one dataset may coexist across goroutines.
//
// Row order always equals source order.
type View struct {
	ds   *Dataset
	rows []int
}

// NewView returns a view spanning every row
func (d *Dataset) NewView() *View {
	rows := make([]int, len(d.Rows))
	for i := range rows {
		rows[i] = i
	}
	return &View{ds: d, rows: rows}
}

// ViewOf returns a view over the given source row indices. The slice is
// copied so later caller mutations cannot reach the view.
func (d *Dataset) ViewOf(indices []int) *View {
	return &View{ds: d, rows: append([]int(nil), indices...)}
}

// Dataset returns the source dataset
func (v *View) Dataset() *Dataset {
	return v.ds
}

// Len returns the number of rows in the view
func (v *View) Len() int {
	return len(v.rows)
}

// Header returns the column order, identical to the source dataset's
func (v *View) Header() []string {
	return v.ds.Header
}

// Row returns the raw cells of the i-th view row
func (v *View) Row(i int) []string {
	return v.ds.Rows[v.rows[i]]
}

// Indices returns a copy of the selected source row indices
func (v *View) Indices() []int {
	return append([]int(nil), v.rows...)
}

// Strings returns the raw cell per view row for a field (missing cells
// included as empty strings). ok is false when the field is absent.
func (v *View) Strings(field string) ([]string, bool) {
	col := v.ds.FieldIndex(field)
	if col < 0 {
		return nil, false
	}
	values := make([]string, len(v.rows))
	for i, r := range v.rows {
		values[i] = strings.TrimSpace(v.ds.Rows[r][col])
	}
	return values, true
}

// Floats returns the usable numeric values of a field in row order.
// Missing and non-numeric cells are skipped, as are cells spelling a
// non-finite value ("NaN", "Inf"): ParseFloat accepts those spellings but
// they carry no usable magnitude, so they count as missing. ok is false when
// the field is absent from the dataset.
func (v *View) Floats(field string) ([]float64, bool) {
	col := v.ds.FieldIndex(field)
	if col < 0 {
		return nil, false
	}
	values := make([]float64, 0, len(v.rows))
	for _, r := range v.rows {
		cell := strings.TrimSpace(v.ds.Rows[r][col])
		if cell == "" {
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil || !isFinite(f) {
			continue
		}
		values = append(values, f)
	}
	return values, true
}

// PairedFloats returns the numeric values of two fields restricted to rows
// where both parse to finite values (pairwise-complete observations).
func (v *View) PairedFloats(a, b string) (xs, ys []float64, ok bool) {
	colA := v.ds.FieldIndex(a)
	colB := v.ds.FieldIndex(b)
	if colA < 0 || colB < 0 {
		return nil, nil, false
	}
	for _, r := range v.rows {
		x, errA := strconv.ParseFloat(strings.TrimSpace(v.ds.Rows[r][colA]), 64)
		y, errB := strconv.ParseFloat(strings.TrimSpace(v.ds.Rows[r][colB]), 64)
		if errA != nil || errB != nil || !isFinite(x) || !isFinite(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Head returns a view over the first n rows (fewer when the view is smaller)
func (v *View) Head(n int) *View {
	if n > len(v.rows) {
		n = len(v.rows)
	}
	if n < 0 {
		n = 0
	}
	return &View{ds: v.ds, rows: v.rows[:n]}
}
