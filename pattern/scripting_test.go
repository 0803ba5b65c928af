package pattern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLuaGenerator_Arguments(t *testing.T) {
	script := `
a, b, c = arguments()
log(a, b, c)
  `
	arguments := []string{"what", "how", "this -- is == weird"}

	result, err := RunLuaGenerator(script, arguments, "")
	if err != nil {
		t.Fatalf("Error running basic generator script: %s", err)
	}
	expected := "what\thow\tthis -- is == weird\n"
	if result.Logs != expected {
		t.Fatalf("Expected logs '%s', got '%s'", expected, result.Logs)
	}
}

func TestRunLuaGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	script := `
local p = preset("integrity")
log("preset", p.bytes_per_cycle, p.cycles_per_row, p.rows)
for i, mode in ipairs({"legacy", "sequential", "integrity"}) do
  local r = generate{mode=mode, output=mode .. ".dat", total_size=3 * 2048, workers=i}
  log(r.mode, r.rows, r.records, r.length)
end
  `
	result, err := RunLuaGenerator(script, nil, dir)
	if err != nil {
		t.Fatalf("Error running generate script: %s", err)
	}
	lines := strings.Split(result.Logs, "\n")
	expected := []string{
		"preset\t64\t32\t2097152",
		"legacy\t3\t192\t6144",
		"sequential\t3\t96\t6144",
		"integrity\t3\t96\t6144",
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Fatalf("Expected at [%d] '%s', got '%s'", i, expected[i], lines[i])
		}
	}
	if len(result.Files) != 3 {
		t.Fatalf("Expected 3 generated files, got %d", len(result.Files))
	}
	for _, f := range result.Files {
		stat, err := os.Stat(f.Filename)
		if err != nil {
			t.Fatalf("Generated file missing: %s", err)
		}
		if stat.Size() != 6144 {
			t.Fatalf("Expected 6144 byte file, got %d", stat.Size())
		}
		if filepath.Dir(f.Filename) != dir {
			t.Fatalf("Expected file in %s, got %s", dir, f.Filename)
		}
	}
}

func TestRunLuaGenerator_ConfigDecoding(t *testing.T) {
	script := `
local c = toml("mode = 'sequential'\n[geometry]\ncycles_per_row = 8")
log(c.mode, c.geometry.cycles_per_row)
local j = json('{"sizes": [1, 2, 3]}')
log(#j.sizes, j.sizes[3])
  `
	result, err := RunLuaGenerator(script, nil, "")
	if err != nil {
		t.Fatalf("Error running decode script: %s", err)
	}
	expected := "sequential\t8\n3\t3\n"
	if result.Logs != expected {
		t.Fatalf("Expected logs '%s', got '%s'", expected, result.Logs)
	}
}

func TestRunLuaGenerator_BadMode(t *testing.T) {
	dir := t.TempDir()
	_, err := RunLuaGenerator(`generate{mode="sideways", output="x.dat"}`, nil, dir)
	if err == nil {
		t.Fatalf("Expected script error for bad mode")
	}
	if _, err := os.Stat(filepath.Join(dir, "x.dat")); !os.IsNotExist(err) {
		t.Fatalf("File should not exist after bad mode")
	}
}
