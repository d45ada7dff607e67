// Package filter declares the declarative filter specification applied to a
// dataset. Predicates are independent and combined with logical AND.
package filter

// Range is an inclusive numeric interval: min <= value <= max
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether a value falls inside the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Spec is a set of independent predicates over dataset fields.
//
// Include maps a categorical field to its inclusion set. A field absent from
// the map passes every row; a field mapped to an explicitly empty set passes
// none. That distinction mirrors a dashboard multiselect with everything
// deselected, and JSON decoding preserves it (missing key vs. empty array).
//
// Ranges maps a numeric field to an inclusive interval. Rows whose value is
// missing or non-numeric fail an active range predicate.
type Spec struct {
	Include map[string][]string `json:"include,omitempty"`
	Ranges  map[string]Range    `json:"ranges,omitempty"`
}

// HasPredicates reports whether the spec constrains anything at all
func (s Spec) HasPredicates() bool {
	return len(s.Include) > 0 || len(s.Ranges) > 0
}

// IncludeSet returns the inclusion set for a field as a membership map.
// present is false when the field is unconstrained.
func (s Spec) IncludeSet(field string) (set map[string]struct{}, present bool) {
	values, present := s.Include[field]
	if !present {
		return nil, false
	}
	set = make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set, true
}
