package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-slots/pkg/filters"
	"github.com/goliatone/go-slots/pkg/record"
	"github.com/goliatone/go-slots/pkg/scripted"
	"github.com/goliatone/go-slots/pkg/template"
)

// loadTemplate reads and compiles the template file at path.
func loadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return template.Compile(string(data))
}

// loadRecord assembles the render record from the given data files and
// --set assignments. Later files win on overlapping keys, and --set
// assignments win over every file.
func loadRecord(dataFiles, sets []string) (map[string]any, error) {
	records := make([]map[string]any, 0, len(dataFiles)+1)
	for _, path := range dataFiles {
		rec, err := record.Load(path)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	overrides := make(map[string]any, len(sets))
	for _, assignment := range sets {
		key, val, ok := strings.Cut(assignment, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", assignment)
		}
		overrides[key] = val
	}
	records = append(records, overrides)

	return record.Merge(records...), nil
}

// loadFilters executes each Starlark script and merges the filters they
// export. Later scripts win on name collisions.
func loadFilters(scripts []string) (filters.Map, error) {
	var merged filters.Map
	for _, path := range scripts {
		m, err := scripted.LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(m)
	}
	return merged, nil
}
