// Package template compiles slot template sources into immutable
// descriptors. A source is literal text with placeholders of the form
// {name|filter#arg,arg|filter2}: a slot name, then an optional chain of
// filters separated by pipes, each with an optional comma separated
// argument list after '#'. Compilation happens once; the resulting
// Template can be rendered any number of times and is safe for
// concurrent use.
package template

import (
	"fmt"
	"sort"
	"strings"
)

// FilterCall is one step in a slot's filter chain: the filter name plus
// its decoded arguments in order.
type FilterCall struct {
	Name string
	Args []string
}

// Slot describes one placeholder in a compiled template.
type Slot struct {
	Name  string
	Chain []FilterCall
}

// Filter returns the name of the first filter in the chain, or "" when
// the slot has none.
func (s Slot) Filter() string {
	if len(s.Chain) == 0 {
		return ""
	}
	return s.Chain[0].Name
}

// Args returns the arguments of the first filter in the chain, or nil
// when the slot has none.
func (s Slot) Args() []string {
	if len(s.Chain) == 0 {
		return nil
	}
	return s.Chain[0].Args
}

// Template is a compiled template: the literal chunks around the slots
// and a descriptor per slot, in source order. Templates are immutable
// once compiled.
type Template struct {
	source string
	chunks []string
	slots  []Slot
}

// Compile parses source in a single pass and returns the compiled
// template. Errors carry the byte offset of the offending character and
// are of type *ParseError.
func Compile(source string) (*Template, error) {
	chunks, raw, err := scan(source)
	if err != nil {
		return nil, err
	}
	slots := make([]Slot, len(raw))
	for i, r := range raw {
		slot, err := parseSlotBody(r)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}
	return &Template{source: source, chunks: chunks, slots: slots}, nil
}

// MustCompile is like Compile but panics on error. Use it for sources
// known at program start.
func MustCompile(source string) *Template {
	tpl, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Chunks returns copies of the literal text runs around the slots. There
// is always exactly one more chunk than there are slots.
func (t *Template) Chunks() []string {
	return append([]string(nil), t.chunks...)
}

// Slots returns the slot descriptors in source order.
func (t *Template) Slots() []Slot {
	return append([]Slot(nil), t.slots...)
}

// SlotNames returns the unique slot names in order of first appearance.
func (t *Template) SlotNames() []string {
	seen := make(map[string]struct{}, len(t.slots))
	names := make([]string, 0, len(t.slots))
	for _, s := range t.slots {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		names = append(names, s.Name)
	}
	return names
}

// HasSlot reports whether name appears as a slot in the template.
func (t *Template) HasSlot(name string) bool {
	for _, s := range t.slots {
		if s.Name == name {
			return true
		}
	}
	return false
}

// MissingKeys returns the slot names that have no key in record, in
// order of first appearance. Values may be nil; only key presence
// counts.
func (t *Template) MissingKeys(record map[string]any) []string {
	var missing []string
	for _, name := range t.SlotNames() {
		if _, ok := record[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// ExtraKeys returns the record keys no slot refers to, sorted.
func (t *Template) ExtraKeys(record map[string]any) []string {
	var extra []string
	for key := range record {
		if !t.HasSlot(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

// Validate reports whether record supplies a key for every slot. Extra
// keys are allowed; missing ones would make a render fail, so they are
// an error here.
func (t *Template) Validate(record map[string]any) error {
	missing := t.MissingKeys(record)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("template: missing values for slots: %s", strings.Join(missing, ", "))
}

// Concat compiles the concatenation of both template sources into a new
// template. The inputs are left untouched.
func Concat(a, b *Template) (*Template, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("template: concat requires two compiled templates")
	}
	return Compile(a.source + b.source)
}
