// Package slots is a compile once, render many string template engine.
// A template source mixes literal text with slots of the form
// {name|filter#arg,arg|filter2}. Compile parses the source into an
// immutable Template; Render fills it from a record, a plain map of
// slot names to values. Every slot name must have a key in the record,
// values are threaded through their filter chains left to right, and
// the results are spliced back between the literal chunks.
//
// The root package re-exports the common types and entry points; the
// pkg subpackages carry the full API surface.
package slots

import (
	"github.com/goliatone/go-slots/pkg/filters"
	"github.com/goliatone/go-slots/pkg/render"
	"github.com/goliatone/go-slots/pkg/template"
)

// Template is a compiled template; alias exported via the root package
// for convenience.
type Template = template.Template

// Slot describes one placeholder in a compiled template.
type Slot = template.Slot

// FilterCall is one step in a slot's filter chain.
type FilterCall = template.FilterCall

// ParseError reports a template syntax problem and its byte offset.
type ParseError = template.ParseError

// Policy configures one render: extra filters layered over the
// builtins, an optional per-slot transform, and output stringification.
type Policy = render.Policy

// Parts is a render split at its slot boundaries.
type Parts = render.Parts

// Result is the outcome of TryRender.
type Result = render.Result

// Bound is a compiled template with part of its record supplied up
// front.
type Bound = render.Bound

// Filters maps filter names to implementations.
type Filters = filters.Map

// MissingKeyError reports a slot with no key in the record.
type MissingKeyError = render.MissingKeyError

// UnknownFilterError reports a filter the effective set does not have.
type UnknownFilterError = render.UnknownFilterError

// Compile parses a template source into an immutable Template.
func Compile(source string) (*Template, error) {
	return template.Compile(source)
}

// MustCompile is Compile for sources known good at program start; it
// panics on error.
func MustCompile(source string) *Template {
	return template.MustCompile(source)
}

// Concat compiles the concatenation of two template sources.
func Concat(a, b *Template) (*Template, error) {
	return template.Concat(a, b)
}

// Render fills tpl from record under policy. A nil policy means builtin
// filters and default stringification.
func Render(tpl *Template, record map[string]any, policy *Policy) (string, error) {
	return render.Render(tpl, record, policy)
}

// RenderString compiles source and renders it against record in one
// call, for callers that do not reuse the template.
func RenderString(source string, record map[string]any, policy *Policy) (string, error) {
	tpl, err := template.Compile(source)
	if err != nil {
		return "", err
	}
	return render.Render(tpl, record, policy)
}

// TryRender is Render with the error folded into a Result.
func TryRender(tpl *Template, record map[string]any, policy *Policy) Result {
	return render.TryRender(tpl, record, policy)
}

// ToParts renders up to but not including stringification.
func ToParts(tpl *Template, record map[string]any, policy *Policy) (Parts, error) {
	return render.ToParts(tpl, record, policy)
}

// ToRawParts returns chunks and converted record values with no
// transform and no filters applied.
func ToRawParts(tpl *Template, record map[string]any) (Parts, error) {
	return render.ToRawParts(tpl, record)
}

// Bind captures values and policy against tpl for later renders.
func Bind(tpl *Template, values map[string]any, policy *Policy) *Bound {
	return render.Bind(tpl, values, policy)
}

// Builtins returns a fresh copy of the builtin filter set.
func Builtins() Filters {
	return filters.Builtins()
}
