package scripted

import (
	"go.starlark.net/starlark"

	"github.com/goliatone/go-slots/pkg/value"
)

// toStarlark converts a slot value into its Starlark counterpart.
func toStarlark(v value.Value) starlark.Value {
	switch t := v.(type) {
	case value.Bool:
		return starlark.Bool(t)
	case value.Int:
		return starlark.MakeInt64(int64(t))
	case value.Float:
		return starlark.Float(t)
	case value.String:
		return starlark.String(t)
	case value.Sequence:
		items := make([]starlark.Value, len(t))
		for i, elem := range t {
			items[i] = toStarlark(elem)
		}
		return starlark.NewList(items)
	case value.Map:
		dict := starlark.NewDict(len(t))
		for key, elem := range t {
			dict.SetKey(starlark.String(key), toStarlark(elem))
		}
		return dict
	}
	return starlark.None
}

// fromStarlark converts a script result back into a slot value. Integers
// that do not fit in int64 come back as their string form.
func fromStarlark(v starlark.Value) value.Value {
	switch t := v.(type) {
	case nil, starlark.NoneType:
		return value.Null{}
	case starlark.Bool:
		return value.Bool(t)
	case starlark.Int:
		if i, ok := t.Int64(); ok {
			return value.Int(i)
		}
		return value.String(t.String())
	case starlark.Float:
		return value.Float(t)
	case starlark.String:
		return value.String(t)
	case *starlark.List:
		seq := make(value.Sequence, t.Len())
		for i := 0; i < t.Len(); i++ {
			seq[i] = fromStarlark(t.Index(i))
		}
		return seq
	case starlark.Tuple:
		seq := make(value.Sequence, len(t))
		for i, elem := range t {
			seq[i] = fromStarlark(elem)
		}
		return seq
	case *starlark.Dict:
		m := make(value.Map, t.Len())
		for _, item := range t.Items() {
			key, elem := item[0], item[1]
			if ks, ok := key.(starlark.String); ok {
				m[string(ks)] = fromStarlark(elem)
			} else {
				m[key.String()] = fromStarlark(elem)
			}
		}
		return m
	}
	return value.String(v.String())
}
