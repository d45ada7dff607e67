package engine

import (
	"reflect"
	"testing"

	"goattrition/domain/core"
	"goattrition/domain/table"
)

func TestHistogramMaxFallsInLastBin(t *testing.T) {
	view := floatsDataset("Age", []string{"20", "30", "40"}).NewView()
	h, err := NewHistogram(view, "Age", 2)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}

	wantEdges := []float64{20, 30, 40}
	if !reflect.DeepEqual(h.Edges, wantEdges) {
		t.Errorf("Edges: expected %v, got %v", wantEdges, h.Edges)
	}
	// 20 -> first bin; 30 and the max 40 -> last bin
	if !reflect.DeepEqual(h.Counts, []int{1, 2}) {
		t.Errorf("Counts: expected [1 2], got %v", h.Counts)
	}
}

func TestHistogramCountsSumToObservations(t *testing.T) {
	ds := floatsDataset("Age", []string{"18", "25", "31", "31", "44", "60", "", "oops"})
	h, err := NewHistogram(ds.NewView(), "Age", 0)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}
	if len(h.Counts) != DefaultBins {
		t.Fatalf("Expected %d bins by default, got %d", DefaultBins, len(h.Counts))
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 6 {
		t.Errorf("Expected 6 usable observations binned, got %d", total)
	}
}

func TestHistogramTreatsNonFiniteAsMissing(t *testing.T) {
	view := floatsDataset("Age", []string{"25", "NaN", "40"}).NewView()
	h, err := NewHistogram(view, "Age", 4)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 2 {
		t.Errorf("Expected the NaN cell dropped, got %d binned values", total)
	}
	if h.Edges[0] != 25 || h.Edges[len(h.Edges)-1] != 40 {
		t.Errorf("Expected edges spanning the finite values, got %v", h.Edges)
	}
}

func TestGroupedHistogramTreatsNonFiniteAsMissing(t *testing.T) {
	ds := table.New("grouped", []string{"Age", "Attrition"}, [][]string{
		{"20", "Yes"},
		{"Inf", "Yes"},
		{"NaN", "No"},
		{"30", "No"},
	})
	h, err := NewGroupedHistogram(ds.NewView(), "Age", "Attrition", 2)
	if err != nil {
		t.Fatalf("NewGroupedHistogram failed: %v", err)
	}
	total := 0
	for _, counts := range h.Groups {
		for _, c := range counts {
			total += c
		}
	}
	if total != 2 {
		t.Errorf("Expected only the finite values binned, got %d", total)
	}
}

func TestHistogramSingleValue(t *testing.T) {
	view := floatsDataset("Age", []string{"35", "35"}).NewView()
	h, err := NewHistogram(view, "Age", 4)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}
	if h.Counts[0] != 2 {
		t.Errorf("Expected both values in the first bin when min==max, got %v", h.Counts)
	}
}

func TestHistogramEmptyView(t *testing.T) {
	view := floatsDataset("Age", nil).NewView()
	h, err := NewHistogram(view, "Age", 5)
	if err != nil {
		t.Fatalf("Expected empty histogram without error, got %v", err)
	}
	if len(h.Edges) != 0 || len(h.Counts) != 0 {
		t.Errorf("Expected empty histogram, got %+v", h)
	}
}

func TestHistogramFieldMissing(t *testing.T) {
	view := floatsDataset("Age", []string{"20"}).NewView()
	if _, err := NewHistogram(view, "Income", 5); !core.IsFieldMissing(err) {
		t.Errorf("Expected a field-missing error, got %v", err)
	}
}

func TestGroupedHistogramSharesEdges(t *testing.T) {
	ds := table.New("grouped", []string{"Age", "Attrition"}, [][]string{
		{"20", "Yes"},
		{"25", "Yes"},
		{"30", "No"},
		{"40", "No"},
	})
	h, err := NewGroupedHistogram(ds.NewView(), "Age", "Attrition", 2)
	if err != nil {
		t.Fatalf("NewGroupedHistogram failed: %v", err)
	}

	// Edges span all groups combined: [20, 30, 40]
	if !reflect.DeepEqual(h.Edges, []float64{20, 30, 40}) {
		t.Errorf("Edges: expected [20 30 40], got %v", h.Edges)
	}
	if !reflect.DeepEqual(h.Groups["Yes"], []int{2, 0}) {
		t.Errorf("Yes: expected [2 0], got %v", h.Groups["Yes"])
	}
	if !reflect.DeepEqual(h.Groups["No"], []int{0, 2}) {
		t.Errorf("No: expected [0 2], got %v", h.Groups["No"])
	}
}

func TestGroupedHistogramSkipsIncompleteRows(t *testing.T) {
	ds := table.New("grouped", []string{"Age", "Attrition"}, [][]string{
		{"20", "Yes"},
		{"", "Yes"},
		{"30", ""},
	})
	h, err := NewGroupedHistogram(ds.NewView(), "Age", "Attrition", 2)
	if err != nil {
		t.Fatalf("NewGroupedHistogram failed: %v", err)
	}
	total := 0
	for _, counts := range h.Groups {
		for _, c := range counts {
			total += c
		}
	}
	if total != 1 {
		t.Errorf("Expected only the complete row binned, got %d", total)
	}
}
