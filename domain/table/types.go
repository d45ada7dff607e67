package table

import (
	"strconv"
	"strings"
)

// FieldKind classifies a column for downstream statistics
type FieldKind string

const (
	KindNumeric     FieldKind = "numeric"
	KindCategorical FieldKind = "categorical"
)

// inferSampleSize caps how many rows type inference examines
const inferSampleSize = 100

// FieldInfo describes a single field/column in the dataset
type FieldInfo struct {
	Name         string    `json:"name"`
	Kind         FieldKind `json:"kind"`
	MissingCount int       `json:"missing_count"`
	UniqueCount  int       `json:"unique_count"`
}

// Dataset is an immutable-once-built table of records. Cells are kept as the
// raw strings the source provided so an export reproduces them exactly.
// Every row has exactly len(Header) cells; an empty cell is a missing value.
//
// No field is guaranteed to be present. Consumers treat absence as "feature
// unavailable", never as corruption.
type Dataset struct {
	Name   string      `json:"name"`
	Header []string    `json:"header"`
	Fields []FieldInfo `json:"fields"`
	Rows   [][]string  `json:"-"`
}

// IsMissing reports whether a cell holds no value
func IsMissing(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

// New builds a dataset from a header and rows, inferring field metadata.
// Short rows are padded and long rows truncated to the header width.
func New(name string, header []string, rows [][]string) *Dataset {
	width := len(header)
	normalized := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == width {
			normalized[i] = row
			continue
		}
		fixed := make([]string, width)
		copy(fixed, row)
		normalized[i] = fixed
	}

	fields := make([]FieldInfo, width)
	for col, fieldName := range header {
		fields[col] = FieldInfo{
			Name:         fieldName,
			Kind:         inferKind(normalized, col),
			MissingCount: countMissing(normalized, col),
			UniqueCount:  countUnique(normalized, col),
		}
	}

	return &Dataset{
		Name:   name,
		Header: append([]string(nil), header...),
		Fields: fields,
		Rows:   normalized,
	}
}

// inferKind samples column values: a column whose non-missing sampled values
// all parse as floats is numeric, everything else is categorical.
func inferKind(rows [][]string, col int) FieldKind {
	sampled := 0
	for _, row := range rows {
		if sampled >= inferSampleSize {
			break
		}
		value := strings.TrimSpace(row[col])
		if value == "" {
			continue
		}
		sampled++
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return KindCategorical
		}
	}
	if sampled == 0 {
		return KindCategorical
	}
	return KindNumeric
}

func countMissing(rows [][]string, col int) int {
	missing := 0
	for _, row := range rows {
		if IsMissing(row[col]) {
			missing++
		}
	}
	return missing
}

func countUnique(rows [][]string, col int) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		value := strings.TrimSpace(row[col])
		if value == "" {
			continue
		}
		seen[value] = struct{}{}
	}
	return len(seen)
}

// RowCount returns the number of records
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// FieldCount returns the number of columns
func (d *Dataset) FieldCount() int {
	return len(d.Header)
}

// HasField reports whether a column is present
func (d *Dataset) HasField(name string) bool {
	return d.FieldIndex(name) >= 0
}

// FieldIndex returns the column position of a field, or -1 when absent
func (d *Dataset) FieldIndex(name string) int {
	for i, h := range d.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Field returns the metadata for a named field
func (d *Dataset) Field(name string) (FieldInfo, bool) {
	idx := d.FieldIndex(name)
	if idx < 0 {
		return FieldInfo{}, false
	}
	return d.Fields[idx], true
}

// NumericFields returns the names of numeric columns in header order
func (d *Dataset) NumericFields() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Kind == KindNumeric {
			names = append(names, f.Name)
		}
	}
	return names
}
