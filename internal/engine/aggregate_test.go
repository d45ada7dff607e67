package engine

import (
	"math"
	"testing"

	"goattrition/domain/core"
	"goattrition/domain/table"
	"goattrition/internal/testkit"
)

func crossTabDataset() *table.Dataset {
	header := []string{"Department", "Attrition"}
	rows := [][]string{
		{"Sales", "Yes"},
		{"Sales", "No"},
		{"HR", "Yes"},
		{"HR", "No"},
		{"IT", "No"},
	}
	return table.New("crosstab", header, rows)
}

func TestCrossTabRateScenario(t *testing.T) {
	view := crossTabDataset().NewView()
	rates, err := CrossTabRate(view, "Department", "Attrition")
	if err != nil {
		t.Fatalf("CrossTabRate failed: %v", err)
	}

	want := map[string]map[string]float64{
		"Sales": {"Yes": 50.0, "No": 50.0},
		"HR":    {"Yes": 50.0, "No": 50.0},
		"IT":    {"Yes": 0.0, "No": 100.0},
	}
	if len(rates) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(rates))
	}
	for category, row := range want {
		for label, expected := range row {
			got, ok := rates[category][label]
			if !ok {
				t.Errorf("Missing %s/%s", category, label)
				continue
			}
			if math.Abs(got-expected) > 1e-9 {
				t.Errorf("%s/%s: expected %.1f, got %v", category, label, expected, got)
			}
		}
	}
}

func TestCrossTabRateRowsSumTo100(t *testing.T) {
	// A larger, messier dataset: every non-empty category must sum to 100
	ds := testkit.GenerateEmployees(300, 7)
	view := ds.NewView()

	for _, field := range []string{"Department", "Gender", "JobRole", "MaritalStatus"} {
		rates, err := CrossTabRate(view, field, "Attrition")
		if err != nil {
			t.Fatalf("CrossTabRate(%s) failed: %v", field, err)
		}
		for category, row := range rates {
			sum := 0.0
			for _, pct := range row {
				sum += pct
			}
			if math.Abs(sum-100.0) > 1e-6 {
				t.Errorf("%s/%s: percentages sum to %v, expected 100", field, category, sum)
			}
		}
	}
}

func TestCrossTabOmitsRowsWithMissingCells(t *testing.T) {
	ds := table.New("gaps", []string{"Department", "Attrition"}, [][]string{
		{"Sales", "Yes"},
		{"", "No"},
		{"HR", ""},
	})
	counts, err := CrossTabCounts(ds.NewView(), "Department", "Attrition")
	if err != nil {
		t.Fatalf("CrossTabCounts failed: %v", err)
	}
	if len(counts) != 1 || counts["Sales"]["Yes"] != 1 {
		t.Errorf("Expected only the complete row to be counted, got %v", counts)
	}
	if _, ok := counts["HR"]; ok {
		t.Error("Expected category with no counted rows to be omitted")
	}
}

func TestDistributionFieldMissing(t *testing.T) {
	view := crossTabDataset().NewView()
	_, err := Distribution(view, "Gender")
	if err == nil {
		t.Fatal("Expected an error for an absent field")
	}
	if !core.IsFieldMissing(err) {
		t.Errorf("Expected a field-missing error, got %v", err)
	}
}

func TestDistributionCounts(t *testing.T) {
	view := crossTabDataset().NewView()
	counts, err := Distribution(view, "Department")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	want := map[string]int{"Sales": 2, "HR": 2, "IT": 1}
	for category, expected := range want {
		if counts[category] != expected {
			t.Errorf("%s: expected %d, got %d", category, expected, counts[category])
		}
	}
}

func TestAttritionRate(t *testing.T) {
	view := crossTabDataset().NewView()
	rate, err := AttritionRate(view, "Attrition")
	if err != nil {
		t.Fatalf("AttritionRate failed: %v", err)
	}
	if rate.Total != 5 {
		t.Errorf("Expected total 5, got %d", rate.Total)
	}
	if math.Abs(rate.Percent["Yes"]-40.0) > 1e-9 || math.Abs(rate.Percent["No"]-60.0) > 1e-9 {
		t.Errorf("Expected 40/60 split, got %v", rate.Percent)
	}
}

func TestAttritionRateEmptyView(t *testing.T) {
	ds := crossTabDataset()
	rate, err := AttritionRate(ds.ViewOf(nil), "Attrition")
	if err != nil {
		t.Fatalf("Expected empty view to be valid, got %v", err)
	}
	if rate.Total != 0 || len(rate.Percent) != 0 {
		t.Errorf("Expected zero-valued rate, got %+v", rate)
	}
}
