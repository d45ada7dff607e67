package filter

import (
	"encoding/json"
	"testing"
)

func TestIncludeSetDistinguishesUnsetFromEmpty(t *testing.T) {
	spec := Spec{Include: map[string][]string{"Department": {}}}

	set, present := spec.IncludeSet("Department")
	if !present {
		t.Error("Expected explicitly empty inclusion set to be present")
	}
	if len(set) != 0 {
		t.Errorf("Expected empty set, got %v", set)
	}

	if _, present := spec.IncludeSet("Gender"); present {
		t.Error("Expected unset field to report not present")
	}
}

func TestSpecJSONPreservesEmptySet(t *testing.T) {
	var spec Spec
	if err := json.Unmarshal([]byte(`{"include":{"Department":[]}}`), &spec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	values, present := spec.Include["Department"]
	if !present {
		t.Fatal("Expected Department key to survive decoding")
	}
	if len(values) != 0 {
		t.Errorf("Expected empty inclusion list, got %v", values)
	}

	// Round trip keeps the key
	encoded, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded Spec
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal round trip failed: %v", err)
	}
	if _, present := decoded.Include["Department"]; !present {
		t.Error("Expected Department key to survive a round trip")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 30, Max: 40}

	tests := []struct {
		value float64
		want  bool
	}{
		{29.999, false},
		{30, true}, // inclusive lower bound
		{35, true},
		{40, true}, // inclusive upper bound
		{40.001, false},
	}
	for _, test := range tests {
		if got := r.Contains(test.value); got != test.want {
			t.Errorf("Contains(%v): expected %v, got %v", test.value, test.want, got)
		}
	}
}

func TestHasPredicates(t *testing.T) {
	if (Spec{}).HasPredicates() {
		t.Error("Expected zero spec to have no predicates")
	}
	if !(Spec{Ranges: map[string]Range{"Age": {Min: 1, Max: 2}}}).HasPredicates() {
		t.Error("Expected range spec to have predicates")
	}
}
