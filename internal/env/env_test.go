package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeLaterWins(t *testing.T) {
	merged := Merge(
		Vars{"A": "1", "B": "1"},
		Vars{"B": "2"},
		Vars{"C": "3"},
	)
	want := Vars{"A": "1", "B": "2", "C": "3"}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("merged[%q] = %q, want %q", k, merged[k], v)
		}
	}
	if len(merged) != len(want) {
		t.Errorf("merged has %d keys, want %d", len(merged), len(want))
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "first.env"), "KEY=first\nONLY_FIRST=yes\n")
	writeFile(t, filepath.Join(dir, "second.env"), "KEY=second\n")

	vars, err := LoadEnvFiles(dir, []string{"first.env", "second.env", ""})
	if err != nil {
		t.Fatalf("LoadEnvFiles: %v", err)
	}
	if vars["KEY"] != "second" {
		t.Errorf("KEY = %q, want later file to win", vars["KEY"])
	}
	if vars["ONLY_FIRST"] != "yes" {
		t.Errorf("ONLY_FIRST = %q, want %q", vars["ONLY_FIRST"], "yes")
	}
}

func TestLoadEnvFilesMissing(t *testing.T) {
	if _, err := LoadEnvFiles(t.TempDir(), []string{"absent.env"}); err == nil {
		t.Error("missing env file should fail")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
