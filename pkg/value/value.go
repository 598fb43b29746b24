// Package value defines the closed set of shapes that flow through a
// render: null, booleans, integers, floats, strings, ordered sequences,
// and keyed maps. Native Go data is converted at the engine boundary so
// filters always receive one of these variants and never raw interface
// values.
package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Value is the interface satisfied by every variant in this package. The
// set of implementations is closed; callers switch on the concrete type
// to inspect a value.
type Value interface {
	// String returns the display form used when a value is spliced into
	// rendered output. Structured variants serialize to compact JSON.
	String() string

	variant()
}

// Null represents an absent or nil value. It renders as the empty string.
type Null struct{}

// Bool wraps a boolean value.
type Bool bool

// Int wraps a signed integer value.
type Int int64

// Float wraps a floating point value.
type Float float64

// String wraps a text value.
type String string

// Sequence is an ordered list of values.
type Sequence []Value

// Map is a collection of values keyed by string.
type Map map[string]Value

func (Null) variant()     {}
func (Bool) variant()     {}
func (Int) variant()      {}
func (Float) variant()    {}
func (String) variant()   {}
func (Sequence) variant() {}
func (Map) variant()      {}

func (Null) String() string { return "" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (s String) String() string { return string(s) }

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSON(&b, elem)
	}
	b.WriteByte(']')
	return b.String()
}

func (m Map) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		b.Write(kb)
		b.WriteByte(':')
		writeJSON(&b, m[k])
	}
	b.WriteByte('}')
	return b.String()
}

// writeJSON appends the JSON form of v. Scalars inside structured values
// keep their JSON encoding rather than their display form, so strings are
// quoted and null stays null.
func writeJSON(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case String:
		sb, _ := json.Marshal(string(t))
		b.Write(sb)
	case Sequence:
		b.WriteString(t.String())
	case Map:
		b.WriteString(t.String())
	default:
		b.WriteString(v.String())
	}
}

// Kind names the variant of v for use in diagnostics.
func Kind(v Value) string {
	switch v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Map:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FromGo converts a native Go value into a Value. Maps with string keys
// become Map, slices and arrays become Sequence, and numeric types
// collapse into Int or Float. Anything unrecognized is captured through
// its fmt representation.
func FromGo(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case uint64:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []any:
		seq := make(Sequence, len(t))
		for i, elem := range t {
			seq[i] = FromGo(elem)
		}
		return seq
	case map[string]any:
		m := make(Map, len(t))
		for k, elem := range t {
			m[k] = FromGo(elem)
		}
		return m
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			seq[i] = FromGo(rv.Index(i).Interface())
		}
		return seq
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = FromGo(iter.Value().Interface())
		}
		return m
	}
	return String(fmt.Sprintf("%v", rv.Interface()))
}

// ToGo converts a Value back into plain Go data made of nil, bool,
// int64, float64, string, []any, and map[string]any. It is the inverse
// used when handing values to encoders.
func ToGo(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case Sequence:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = ToGo(elem)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = ToGo(elem)
		}
		return out
	}
	return nil
}
