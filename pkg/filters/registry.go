// Package filters provides the built in slot filters and the Map type
// used to hand filter sets to a render. The base mapping returned by
// Builtins is never shared mutable state; callers derive extended sets
// with Merge and pass them through a render policy.
package filters

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-slots/pkg/value"
)

// Func transforms a slot value during rendering. Arguments arrive
// decoded and trimmed exactly as written in the template. Returning an
// error aborts the render.
type Func func(v value.Value, args []string) (value.Value, error)

// Map associates filter names with implementations. The zero value is
// usable; lookups on a nil Map simply miss.
type Map map[string]Func

// Merge returns a new Map with the receiver's entries and over's entries
// layered on top. Neither input is modified.
func (m Map) Merge(over Map) Map {
	out := make(Map, len(m)+len(over))
	for name, fn := range m {
		out[name] = fn
	}
	for name, fn := range over {
		out[name] = fn
	}
	return out
}

// Has reports whether name is present.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Names returns the filter names in the Map, sorted.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Errorf builds a filter error prefixed with the filter's name, the form
// every built in uses for its own failures.
func Errorf(name, format string, args ...any) error {
	return fmt.Errorf("%s: %s", name, fmt.Sprintf(format, args...))
}

// display returns the string form a filter treats as its text input.
func display(v value.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
