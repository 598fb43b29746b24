// Package testsupport holds helpers shared by the package test suites:
// fixture loading, template compilation shortcuts, and golden file
// handling driven by the UPDATE_GOLDENS environment variable.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-slots/pkg/record"
	"github.com/goliatone/go-slots/pkg/template"
)

// MustTemplate compiles a template source, failing the test on error.
// Testing helpers fail fast to keep contract tests concise.
func MustTemplate(t *testing.T, source string) *template.Template {
	t.Helper()

	tpl, err := template.Compile(source)
	if err != nil {
		t.Fatalf("compile template: %v", err)
	}
	return tpl
}

// MustRecord reads a record fixture, failing the test on error.
func MustRecord(t *testing.T, path string) map[string]any {
	t.Helper()

	rec, err := LoadRecordFromPath(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return rec
}

// LoadRecordFromPath returns a record without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadRecordFromPath(path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New("testsupport: record path is required")
	}
	rec, err := record.Load(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return rec, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string
// content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
