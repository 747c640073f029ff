package namefilter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_NilConfig(t *testing.T) {
	nf := New(nil)

	if nf.IsEnabled() {
		t.Error("Filter should be disabled when config is nil")
	}
	if !nf.Allow("Anything") {
		t.Error("Disabled filter should allow every name")
	}
}

func TestNilFilterAllows(t *testing.T) {
	var nf *NameFilter
	if !nf.Allow("Ashmere") {
		t.Error("nil filter should allow every name")
	}
	if nf.IsEnabled() {
		t.Error("nil filter should report disabled")
	}
}

func TestNew_DisabledConfig(t *testing.T) {
	nf := New(&Config{
		Enabled:     false,
		MinLength:   5,
		BannedWords: []string{"rot"},
		BannedNames: []string{"doom"},
	})

	for _, name := range []string{"Rotmarsh", "Doom", "Ab"} {
		if !nf.Allow(name) {
			t.Errorf("Disabled filter rejected %q", name)
		}
	}
}

func TestCheck(t *testing.T) {
	nf := New(&Config{
		Enabled:     true,
		MinLength:   3,
		BannedWords: []string{"rot", "", "  gore "},
		BannedNames: []string{"doom", ""},
	})

	tests := []struct {
		name    string
		allowed bool
	}{
		{"Thornwood", true},
		{"Ashmere", true},
		{"Rotmarsh", false},   // banned fragment
		{"Fenrot", false},     // banned fragment at the end
		{"GOREhaven", false},  // trimmed and case insensitive
		{"Doom", false},       // exact banned name
		{"Doomvale", true},    // banned names match exactly
		{"Ab", false},         // below minimum length
		{"Abe", true},         // at minimum length
		{"Élan", true},        // runes, not bytes
	}

	for _, tc := range tests {
		result := nf.Check(tc.name)
		if result.Allowed != tc.allowed {
			t.Errorf("Check(%q) = %v, want %v", tc.name, result.Allowed, tc.allowed)
		}
		if !tc.allowed && result.Reason == "" {
			t.Errorf("Check(%q) should have a rejection reason", tc.name)
		}
		if tc.allowed && result.Reason != "" {
			t.Errorf("Check(%q) allowed with reason %q", tc.name, result.Reason)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "name_filter.yaml")
	configContent := `enabled: true
min_length: 3
banned_words:
  - rot
  - gore
banned_names:
  - doom
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.Enabled || cfg.MinLength != 3 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if len(cfg.BannedWords) != 2 {
		t.Errorf("Expected 2 banned words, got %d", len(cfg.BannedWords))
	}
	if len(cfg.BannedNames) != 1 {
		t.Errorf("Expected 1 banned name, got %d", len(cfg.BannedNames))
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/config.yaml"); err == nil {
		t.Error("LoadConfig should return error for nonexistent file")
	}

	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestRepositoryFilterLoads(t *testing.T) {
	cfg, err := LoadConfig("../../data/name_filter.yaml")
	if err != nil {
		t.Fatalf("LoadConfig(data/name_filter.yaml) failed: %v", err)
	}
	if !New(cfg).Allow("Thornwood") {
		t.Error("shipped filter should allow an ordinary name")
	}
}
