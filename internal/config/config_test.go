package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Report.MaxCategories != 20 {
		t.Errorf("expected default max categories 20, got %d", cfg.Report.MaxCategories)
	}
	if cfg.Report.BaseColor != "#2b6cb0" {
		t.Errorf("expected default base color, got %s", cfg.Report.BaseColor)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MAX_CATEGORIES", "7")
	t.Setenv("BASE_COLOR", "#00f2ff")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9999" || cfg.Report.MaxCategories != 7 || cfg.Report.BaseColor != "#00f2ff" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsNonPositiveMaxCategories(t *testing.T) {
	t.Setenv("MAX_CATEGORIES", "-3")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for negative MAX_CATEGORIES")
	}
}
