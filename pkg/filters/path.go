package filters

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-slots/pkg/value"
)

// pathFilter walks a dotted path into a structured value. Any step that
// cannot be resolved makes the whole lookup fall back to the optional
// second argument, or the empty string.
func pathFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("path", "missing path")
	}
	segments, err := splitPath(args[0])
	if err != nil {
		return nil, err
	}
	var fallback value.Value = value.String("")
	if len(args) > 1 {
		fallback = value.String(args[1])
	}

	cur := v
	for _, seg := range segments {
		next, ok := resolveSegment(cur, seg)
		if !ok {
			return fallback, nil
		}
		cur = next
	}
	return cur, nil
}

// splitPath splits a dotted path into trimmed segments. An empty path or
// empty segment is an error.
func splitPath(path string) ([]string, error) {
	parts := strings.Split(path, ".")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, Errorf("path", "empty segment in %q", path)
		}
		parts[i] = part
	}
	return parts, nil
}

// resolveSegment descends one step. Maps resolve by key, sequences by
// non-negative integer index. Anything else, including null, is not
// traversable.
func resolveSegment(v value.Value, seg string) (value.Value, bool) {
	switch t := v.(type) {
	case value.Map:
		next, ok := t[seg]
		return next, ok
	case value.Sequence:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(t) {
			return nil, false
		}
		return t[idx], true
	}
	return nil, false
}
