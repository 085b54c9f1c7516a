package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/gosigil/pkg/templates"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gosigil.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
verbosity = 2

[match]
families = ["brimstone"]

[watch]
debounce = "250ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity failed: expected 2, got %d", cfg.Verbosity)
	}
	families, err := cfg.Families()
	if err != nil {
		t.Fatalf("Families failed: %v", err)
	}
	if len(families) != 1 || families[0] != templates.FamilyBrimstone {
		t.Errorf("Families failed: expected [brimstone], got %v", families)
	}
	debounce, err := cfg.DebounceDuration()
	if err != nil {
		t.Fatalf("DebounceDuration failed: %v", err)
	}
	if debounce != 250*time.Millisecond {
		t.Errorf("DebounceDuration failed: expected 250ms, got %v", debounce)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	debounce, err := cfg.DebounceDuration()
	if err != nil || debounce != DefaultDebounce {
		t.Errorf("DebounceDuration failed: expected %v, got %v (%v)", DefaultDebounce, debounce, err)
	}
	families, err := cfg.Families()
	if err != nil || len(families) != 0 {
		t.Errorf("Families failed: expected none, got %v (%v)", families, err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbosity = 1\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Watch.Debounce != DefaultDebounce.String() {
		t.Errorf("Debounce failed: expected %s, got %q", DefaultDebounce, cfg.Watch.Debounce)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "colour = \"red\"\n",
		"unknown family": "[match]\nfamilies = [\"runes\"]\n",
		"bad debounce":   "[watch]\ndebounce = \"soon\"\n",
		"negative":       "[watch]\ndebounce = \"-1s\"\n",
		"invalid toml":   "verbosity = \n",
	}

	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("Load %s failed: expected error", name)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load failed: expected error for missing file")
	}
}
