package render

import (
	"strings"

	"github.com/goliatone/go-slots/pkg/template"
	"github.com/goliatone/go-slots/pkg/value"
)

// Parts is a render broken at its slot boundaries: the literal chunks,
// the slot descriptors, and one evaluated value per slot. Chunks always
// has exactly one more entry than Slots and Values.
type Parts struct {
	Chunks []string
	Slots  []template.Slot
	Values []value.Value
}

// Result is the outcome of TryRender. When OK is false, Err holds the
// error a plain Render would have returned and Value is empty.
type Result struct {
	OK    bool
	Value string
	Err   error
}

// Render evaluates tpl against record under policy and returns the
// assembled output. A nil policy applies the builtin filters with
// default stringification.
func Render(tpl *template.Template, record map[string]any, policy *Policy) (string, error) {
	eff := resolve(policy)
	values, err := evaluate(tpl, record, eff)
	if err != nil {
		return "", err
	}
	return assemble(tpl.Chunks(), values, eff.stringify), nil
}

// TryRender is Render with the error folded into the result, for
// callers probing whether a record can satisfy a template.
func TryRender(tpl *template.Template, record map[string]any, policy *Policy) Result {
	out, err := Render(tpl, record, policy)
	if err != nil {
		return Result{Err: err}
	}
	return Result{OK: true, Value: out}
}

// ToParts evaluates like Render but stops before stringification,
// returning the chunks and per-slot values for callers doing their own
// assembly.
func ToParts(tpl *template.Template, record map[string]any, policy *Policy) (Parts, error) {
	eff := resolve(policy)
	values, err := evaluate(tpl, record, eff)
	if err != nil {
		return Parts{}, err
	}
	return Parts{Chunks: tpl.Chunks(), Slots: tpl.Slots(), Values: values}, nil
}

// ToRawParts returns the chunks and the record values converted but
// untouched: no transform and no filter chains. Missing keys still
// fail, so the parts always line up with the slots.
func ToRawParts(tpl *template.Template, record map[string]any) (Parts, error) {
	slots := tpl.Slots()
	values := make([]value.Value, len(slots))
	for i, slot := range slots {
		raw, ok := record[slot.Name]
		if !ok {
			return Parts{}, &MissingKeyError{Slot: slot.Name}
		}
		values[i] = value.FromGo(raw)
	}
	return Parts{Chunks: tpl.Chunks(), Slots: slots, Values: values}, nil
}

// assemble interleaves chunks and stringified values. With n slots there
// are n+1 chunks, so output starts and ends with literal text.
func assemble(chunks []string, values []value.Value, stringify func(value.Value) string) string {
	var b strings.Builder
	for i, chunk := range chunks {
		b.WriteString(chunk)
		if i < len(values) {
			b.WriteString(stringify(values[i]))
		}
	}
	return b.String()
}
