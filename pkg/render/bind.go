package render

import (
	"github.com/goliatone/go-slots/pkg/template"
)

// Bound pairs a compiled template with values supplied up front and the
// policy to render under. The remaining slots are filled per render
// call, which makes a Bound handy for templates where most values are
// fixed and a few vary.
type Bound struct {
	tpl    *template.Template
	values map[string]any
	policy *Policy
}

// Bind captures values and policy against tpl. The values map is copied,
// so later changes by the caller do not leak into renders.
func Bind(tpl *template.Template, values map[string]any, policy *Policy) *Bound {
	bound := make(map[string]any, len(values))
	for k, v := range values {
		bound[k] = v
	}
	return &Bound{tpl: tpl, values: bound, policy: policy}
}

// Template returns the underlying compiled template.
func (b *Bound) Template() *template.Template { return b.tpl }

// Values returns a copy of the pre-supplied values.
func (b *Bound) Values() map[string]any {
	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Render merges rest over the bound values and renders. Bound and
// remaining keys are normally disjoint; on overlap the rest entry wins.
func (b *Bound) Render(rest map[string]any) (string, error) {
	return Render(b.tpl, b.merged(rest), b.policy)
}

// TryRender is Render with the error folded into a Result.
func (b *Bound) TryRender(rest map[string]any) Result {
	return TryRender(b.tpl, b.merged(rest), b.policy)
}

// MissingKeys reports which slots would still be unfilled if rest were
// merged over the bound values.
func (b *Bound) MissingKeys(rest map[string]any) []string {
	return b.tpl.MissingKeys(b.merged(rest))
}

func (b *Bound) merged(rest map[string]any) map[string]any {
	out := make(map[string]any, len(b.values)+len(rest))
	for k, v := range b.values {
		out[k] = v
	}
	for k, v := range rest {
		out[k] = v
	}
	return out
}
