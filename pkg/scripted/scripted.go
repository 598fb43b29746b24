// Package scripted loads filter definitions written in Starlark. Every
// top level function in a script becomes a filter: it is called with the
// slot value first and the filter arguments after it, and whatever it
// returns becomes the new slot value. Functions whose names start with
// an underscore stay private to the script.
package scripted

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"

	"github.com/goliatone/go-slots/pkg/filters"
	"github.com/goliatone/go-slots/pkg/value"
)

// LoadFile executes the Starlark script at path and returns its
// functions as a filter Map.
func LoadFile(path string) (filters.Map, error) {
	return Load(path, nil)
}

// Load executes a Starlark script and collects its top level functions
// into a filter Map. src may be nil to read from name, or a string or
// byte slice with the script text, following starlark.ExecFile.
func Load(name string, src any) (filters.Map, error) {
	thread := &starlark.Thread{Name: "go-slots"}
	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("scripted: exec %s: %w", name, err)
	}

	out := make(filters.Map)
	for fname, global := range globals {
		fn, ok := global.(starlark.Callable)
		if !ok || strings.HasPrefix(fname, "_") {
			continue
		}
		out[fname] = filterFunc(fname, fn)
	}
	return out, nil
}

// filterFunc adapts a Starlark callable to the filter signature. Each
// call runs on a fresh thread, keeping the filters safe for concurrent
// renders.
func filterFunc(name string, fn starlark.Callable) filters.Func {
	return func(v value.Value, args []string) (value.Value, error) {
		callArgs := make(starlark.Tuple, 0, len(args)+1)
		callArgs = append(callArgs, toStarlark(v))
		for _, arg := range args {
			callArgs = append(callArgs, starlark.String(arg))
		}

		thread := &starlark.Thread{Name: "go-slots/" + name}
		res, err := starlark.Call(thread, fn, callArgs, nil)
		if err != nil {
			return nil, filters.Errorf(name, "%v", err)
		}
		return fromStarlark(res), nil
	}
}
