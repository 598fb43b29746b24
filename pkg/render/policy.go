// Package render evaluates compiled templates against records. A record
// is a plain map of slot names to values; evaluation checks key presence
// for every slot, threads each value through its filter chain, and
// splices the results between the template's literal chunks. The
// behavior of one render is configured by a Policy and never by shared
// mutable state, so compiled templates can render concurrently.
package render

import (
	"github.com/goliatone/go-slots/pkg/filters"
	"github.com/goliatone/go-slots/pkg/template"
	"github.com/goliatone/go-slots/pkg/value"
)

// Policy carries the per-render configuration. The zero value and a nil
// *Policy both mean: builtin filters only, no transform, default
// stringification.
type Policy struct {
	// Filters is layered over the builtin set; entries with the same
	// name win over builtins.
	Filters filters.Map

	// Transform, when set, runs after a slot's value is read from the
	// record and before its filter chain. It can veto the render by
	// returning an error.
	Transform func(slot template.Slot, v value.Value) (value.Value, error)

	// Stringify converts each slot's final value to output text. When
	// nil the value's String form is used.
	Stringify func(v value.Value) string
}

// effective is a Policy resolved against the defaults for one render.
type effective struct {
	filters   filters.Map
	transform func(slot template.Slot, v value.Value) (value.Value, error)
	stringify func(v value.Value) string
}

func resolve(p *Policy) effective {
	eff := effective{
		filters:   filters.Builtins(),
		stringify: defaultStringify,
	}
	if p == nil {
		return eff
	}
	if len(p.Filters) > 0 {
		eff.filters = eff.filters.Merge(p.Filters)
	}
	eff.transform = p.Transform
	if p.Stringify != nil {
		eff.stringify = p.Stringify
	}
	return eff
}

func defaultStringify(v value.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
