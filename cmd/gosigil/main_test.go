package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gosigil/internal/config"
	"github.com/spf13/pflag"
)

// run executes the CLI with fresh flag values and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}
	cfg = config.Default()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var values []string
			if trimmed := strings.Trim(f.DefValue, "[]"); trimmed != "" {
				values = strings.Split(trimmed, ",")
			}
			sv.Replace(values)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func writeFigure(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestTemplatesCommand(t *testing.T) {
	out, err := run(t, "templates")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	for _, name := range []string{"pentagram", "triangle-fire", "crescent", "sun"} {
		if !strings.Contains(out, name) {
			t.Errorf("templates failed: %s missing from %q", name, out)
		}
	}

	out, err = run(t, "templates", "--family", "brimstone")
	if err != nil {
		t.Fatalf("templates --family failed: %v", err)
	}
	if strings.Contains(out, "pentagram") || !strings.Contains(out, "triangle-earth") {
		t.Errorf("templates --family failed: got %q", out)
	}

	if _, err := run(t, "templates", "--family", "runes"); err == nil {
		t.Error("templates --family failed: expected error for unknown family")
	}
}

func TestFitCommand(t *testing.T) {
	out, err := run(t, "fit", "circle", "1", "0", "0", "0", "1", "0", "-1", "0", "0")
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if !strings.Contains(out, "Radius: 1.000000") {
		t.Errorf("fit failed: expected radius 1, got %q", out)
	}

	if _, err := run(t, "fit", "circle", "0", "0", "0", "1", "0", "0", "2", "0", "0"); err == nil {
		t.Error("fit failed: expected error for collinear points")
	}
	if _, err := run(t, "fit", "spiral", "1", "0", "0", "0", "1", "0", "-1", "0", "0"); err == nil {
		t.Error("fit failed: expected error for unknown kind")
	}
}

func TestSampleAndMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilted.yaml")
	if _, err := run(t, "sample", "pentagram", "-o", path, "--axis", "1,1,0", "--angle", "30", "--scale", "2", "--offset", "1,2,3"); err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	out, err := run(t, "match", path)
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if !strings.Contains(out, "Best match: pentagram") || !strings.Contains(out, "Accepted: true") {
		t.Errorf("match failed: got %q", out)
	}

	out, err = run(t, "match", "--json", path)
	if err != nil {
		t.Fatalf("match --json failed: %v", err)
	}
	var result resultJSON
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("match --json failed: invalid JSON %q: %v", out, err)
	}
	if result.Template != "pentagram" || !result.Accepted {
		t.Errorf("match --json failed: got %+v", result)
	}
	if result.Overlay == nil || len(result.Overlay.Segments) != 5 {
		t.Errorf("match --json overlay failed: got %+v", result.Overlay)
	}
}

func TestMatchFamilyFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star.sig")
	if _, err := run(t, "sample", "pentagram", "-o", path); err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	configFile := writeFigure(t, "gosigil.toml", "[match]\nfamilies = [\"brimstone\"]\n")

	out, err := run(t, "--config", configFile, "match", "--json", path)
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	var result resultJSON
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("match failed: invalid JSON %q: %v", out, err)
	}
	if result.Family != "brimstone" {
		t.Errorf("match failed: expected a brimstone template, got %+v", result)
	}
}

func TestMatchTooFewPrimitives(t *testing.T) {
	path := writeFigure(t, "line.sig", "segment 0 0 0 1 0 0\n")

	out, err := run(t, "match", path)
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if !strings.Contains(out, "No template could be attempted") {
		t.Errorf("match failed: got %q", out)
	}

	out, err = run(t, "match", "--json", path)
	if err != nil {
		t.Fatalf("match --json failed: %v", err)
	}
	if !strings.Contains(out, `"score":null`) {
		t.Errorf("match --json failed: expected null score, got %q", out)
	}
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	if _, err := run(t, "sample", "square", "-o", path, "--scale", "3"); err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	out, err := run(t, "inspect", "--longest", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"Name: square", "Segments: 4", "Top 4 Longest Segments", "Residual: 0.000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect failed: %q missing from %q", want, out)
		}
	}
}

func TestInspectNegativeCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentagram.yaml")
	if _, err := run(t, "sample", "pentagram", "-o", path); err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	if _, err := run(t, "inspect", "--longest", "-n=-1", path); err == nil {
		t.Error("inspect failed: expected error for negative count")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := run(t, "match", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("match failed: expected error for missing file")
	}
}

func TestFinite(t *testing.T) {
	if v := finite(1.5); v == nil || *v != 1.5 {
		t.Errorf("finite failed: expected 1.5, got %v", v)
	}
	if finite(math.Inf(1)) != nil {
		t.Error("finite failed: expected nil for +Inf")
	}
}

