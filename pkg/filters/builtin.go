package filters

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-slots/pkg/value"
)

// Builtins returns a fresh Map holding the standard filters. Each call
// allocates a new Map, so callers may layer their own entries over it
// without affecting anyone else.
func Builtins() Map {
	return Map{
		"upper":    upperFilter,
		"lower":    lowerFilter,
		"trim":     trimFilter,
		"slice":    sliceFilter,
		"wrap":     wrapFilter,
		"json":     jsonFilter,
		"pad":      padFilter,
		"fixed":    fixedFilter,
		"default":  defaultFilter,
		"length":   lengthFilter,
		"sanitize": sanitizeFilter,
		"path":     pathFilter,
		"map":      mapFilter,
		"join":     joinFilter,
	}
}

func upperFilter(v value.Value, _ []string) (value.Value, error) {
	return value.String(strings.ToUpper(display(v))), nil
}

func lowerFilter(v value.Value, _ []string) (value.Value, error) {
	return value.String(strings.ToLower(display(v))), nil
}

func trimFilter(v value.Value, _ []string) (value.Value, error) {
	return value.String(strings.TrimSpace(display(v))), nil
}

// sliceFilter extracts a subrange. Sequences slice by element, anything
// else by rune over the string form. Negative indexes count from the
// end and out of range indexes clamp to the bounds.
func sliceFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("slice", "missing start index")
	}
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, Errorf("slice", "invalid start index %q", args[0])
	}
	end, hasEnd := 0, false
	if len(args) > 1 {
		end, err = strconv.Atoi(args[1])
		if err != nil {
			return nil, Errorf("slice", "invalid end index %q", args[1])
		}
		hasEnd = true
	}

	if seq, ok := v.(value.Sequence); ok {
		lo, hi := sliceBounds(start, end, hasEnd, len(seq))
		out := make(value.Sequence, hi-lo)
		copy(out, seq[lo:hi])
		return out, nil
	}
	runes := []rune(display(v))
	lo, hi := sliceBounds(start, end, hasEnd, len(runes))
	return value.String(string(runes[lo:hi])), nil
}

func sliceBounds(start, end int, hasEnd bool, n int) (int, int) {
	lo := clampIndex(start, n)
	hi := n
	if hasEnd {
		hi = clampIndex(end, n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// wrapFilter surrounds the string form with a prefix and suffix. With a
// single argument the same text goes on both sides.
func wrapFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("wrap", "missing wrapper")
	}
	prefix := args[0]
	suffix := prefix
	if len(args) > 1 {
		suffix = args[1]
	}
	return value.String(prefix + display(v) + suffix), nil
}

// jsonFilter serializes the value. An indent argument switches to
// indented output; it must be a non-negative integer.
func jsonFilter(v value.Value, args []string) (value.Value, error) {
	data := value.ToGo(v)
	if len(args) == 0 {
		return marshalCompact(data)
	}
	indent, err := strconv.Atoi(args[0])
	if err != nil || indent < 0 {
		return nil, Errorf("json", "invalid indent %q", args[0])
	}
	if indent == 0 {
		return marshalCompact(data)
	}
	b, err := json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, Errorf("json", "encode: %v", err)
	}
	return value.String(b), nil
}

func marshalCompact(data any) (value.Value, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, Errorf("json", "encode: %v", err)
	}
	return value.String(b), nil
}

// padFilter left pads the string form to width runes. The fill text
// defaults to a space and repeats as needed.
func padFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("pad", "missing width")
	}
	width, err := strconv.Atoi(args[0])
	if err != nil || width < 0 {
		return nil, Errorf("pad", "invalid width %q", args[0])
	}
	fill := " "
	if len(args) > 1 && args[1] != "" {
		fill = args[1]
	}

	s := display(v)
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return value.String(s), nil
	}
	fr := []rune(fill)
	padding := make([]rune, gap)
	for i := range padding {
		padding[i] = fr[i%len(fr)]
	}
	return value.String(string(padding) + s), nil
}

// fixedFilter formats a numeric value with a fixed number of decimal
// places.
func fixedFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("fixed", "missing precision")
	}
	places, err := strconv.Atoi(args[0])
	if err != nil || places < 0 {
		return nil, Errorf("fixed", "invalid precision %q", args[0])
	}
	f, ok := numeric(v)
	if !ok {
		return nil, Errorf("fixed", "value %q is not numeric", display(v))
	}
	return value.String(strconv.FormatFloat(f, 'f', places, 64)), nil
}

// numeric extracts a float from numeric variants and numeric strings.
func numeric(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t), true
	case value.Float:
		return float64(t), true
	case value.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		return f, err == nil
	}
	return 0, false
}

// defaultFilter substitutes a fallback when the value is null or an
// empty string. Without an argument the value passes through.
func defaultFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return v, nil
	}
	switch t := v.(type) {
	case nil, value.Null:
		return value.String(args[0]), nil
	case value.String:
		if t == "" {
			return value.String(args[0]), nil
		}
	}
	return v, nil
}

// lengthFilter counts runes in strings and entries in sequences and
// maps.
func lengthFilter(v value.Value, _ []string) (value.Value, error) {
	switch t := v.(type) {
	case value.String:
		return value.Int(utf8.RuneCountInString(string(t))), nil
	case value.Sequence:
		return value.Int(len(t)), nil
	case value.Map:
		return value.Int(len(t)), nil
	}
	return nil, Errorf("length", "%s value has no length", value.Kind(v))
}

// joinFilter concatenates the string forms of a sequence's elements.
// The separator defaults to the empty string.
func joinFilter(v value.Value, args []string) (value.Value, error) {
	seq, ok := v.(value.Sequence)
	if !ok {
		return nil, Errorf("join", "input is not a sequence (got %s)", value.Kind(v))
	}
	sep := ""
	if len(args) > 0 {
		sep = args[0]
	}
	parts := make([]string, len(seq))
	for i, elem := range seq {
		parts[i] = display(elem)
	}
	return value.String(strings.Join(parts, sep)), nil
}
