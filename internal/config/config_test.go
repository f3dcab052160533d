package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity.TotalBeds != DefaultTotalBeds {
		t.Fatalf("total_beds=%d", cfg.Capacity.TotalBeds)
	}
	if cfg.Forecast.HorizonDays != 7 || cfg.Forecast.CriticalThreshold != 15 {
		t.Fatalf("forecast policy=%+v", cfg.Forecast)
	}
	if cfg.Forecast.RestWeekday() != time.Sunday {
		t.Fatalf("rest day=%v", cfg.Forecast.RestWeekday())
	}
	if cfg.HTTP.Addr() != "0.0.0.0:8000" {
		t.Fatalf("addr=%q", cfg.HTTP.Addr())
	}
	if cfg.Model.Timeout != DefaultModelTimeout {
		t.Fatalf("timeout=%s", cfg.Model.Timeout)
	}
	if cfg.HTTP.StrictStatus {
		t.Fatalf("strict status must default to false")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
capacity:
  total_beds: 90
forecast:
  critical_threshold: 10
model:
  timeout: 500ms
`)
	t.Setenv("BEDS_HTTP_PORT", "9100")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity.TotalBeds != 90 || cfg.Forecast.CriticalThreshold != 10 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Model.Timeout != 500*time.Millisecond {
		t.Fatalf("timeout=%s", cfg.Model.Timeout)
	}
	if cfg.HTTP.Port != "9100" {
		t.Fatalf("env override not applied: port=%q", cfg.HTTP.Port)
	}
}

func TestLoad_RejectsInvalidCapacity(t *testing.T) {
	dir := writeConfig(t, "capacity:\n  total_beds: 0\n")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error for zero beds")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Capacity: CapacityConfig{TotalBeds: 150},
		Forecast: ForecastConfig{HorizonDays: 7, CriticalThreshold: 15, RestDay: "sunday"},
		Model:    ModelConfig{Timeout: time.Second},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.Forecast.HorizonDays = 0
	if bad.Validate() == nil {
		t.Fatalf("expected error for zero horizon")
	}
	bad = base
	bad.Forecast.CriticalThreshold = -1
	if bad.Validate() == nil {
		t.Fatalf("expected error for negative threshold")
	}
	bad = base
	bad.Forecast.RestDay = "someday"
	if bad.Validate() == nil {
		t.Fatalf("expected error for unknown rest day")
	}
	bad = base
	bad.Model.Timeout = 0
	if bad.Validate() == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"sunday": time.Sunday, "Sun": time.Sunday, " MONDAY ": time.Monday, "sat": time.Saturday,
	} {
		got, err := ParseWeekday(in)
		if err != nil || got != want {
			t.Fatalf("ParseWeekday(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseWeekday("funday"); err == nil {
		t.Fatalf("expected error")
	}
}
