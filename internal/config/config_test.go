package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_FILE", "")
	t.Setenv("ATTRITION_FIELD", "")
	t.Setenv("PREVIEW_ROWS", "")
	t.Setenv("PORT", "")
	t.Setenv("PPROF_ENABLED", "")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Data.File != "" {
		t.Errorf("Expected demo mode by default, got %q", config.Data.File)
	}
	if config.Data.AttritionField != "Attrition" {
		t.Errorf("Expected default attrition field, got %q", config.Data.AttritionField)
	}
	if config.Data.PreviewRows != 5 {
		t.Errorf("Expected 5 preview rows, got %d", config.Data.PreviewRows)
	}
	if config.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", config.Server.Port)
	}
	if config.Profiling.Enabled {
		t.Error("Expected profiling off by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATA_FILE", "/data/hr.csv")
	t.Setenv("ATTRITION_FIELD", "Left")
	t.Setenv("PREVIEW_ROWS", "10")
	t.Setenv("PORT", "9000")
	t.Setenv("PPROF_ENABLED", "true")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Data.File != "/data/hr.csv" {
		t.Errorf("Unexpected data file %q", config.Data.File)
	}
	if config.Data.AttritionField != "Left" {
		t.Errorf("Unexpected attrition field %q", config.Data.AttritionField)
	}
	if config.Data.PreviewRows != 10 {
		t.Errorf("Unexpected preview rows %d", config.Data.PreviewRows)
	}
	if config.Server.Port != "9000" {
		t.Errorf("Unexpected port %q", config.Server.Port)
	}
	if !config.Profiling.Enabled {
		t.Error("Expected profiling enabled")
	}
}

func TestLoadRejectsNegativePreviewRows(t *testing.T) {
	t.Setenv("PREVIEW_ROWS", "-1")

	if _, err := Load(); err == nil {
		t.Error("Expected validation to reject negative preview rows")
	}
}

func TestGetEnvIntOrDefaultIgnoresGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := getEnvIntOrDefault("SOME_INT", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}
