// Package record loads and combines the flat maps a render consumes.
// Documents may be JSON or YAML; the format is detected by trying JSON
// first and falling back to YAML, so either works without configuration.
package record

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a record document from path.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a record document into a map. The top level must be a
// mapping; source only labels errors.
func Parse(data []byte, source string) (map[string]any, error) {
	var viaJSON map[string]any
	if err := json.Unmarshal(data, &viaJSON); err == nil {
		return viaJSON, nil
	}

	var viaYAML map[string]any
	if err := yaml.Unmarshal(data, &viaYAML); err == nil {
		return viaYAML, nil
	}

	return nil, fmt.Errorf("record: parse %s: invalid JSON or YAML", source)
}

// Merge overlays records left to right into a new map, later entries
// winning on duplicate keys. Nil inputs are skipped.
func Merge(records ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, r := range records {
		for k, v := range r {
			out[k] = v
		}
	}
	return out
}
