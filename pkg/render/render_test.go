package render_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-slots/pkg/filters"
	"github.com/goliatone/go-slots/pkg/render"
	"github.com/goliatone/go-slots/pkg/template"
	"github.com/goliatone/go-slots/pkg/value"
)

func compile(t *testing.T, source string) *template.Template {
	t.Helper()
	tpl, err := template.Compile(source)
	if err != nil {
		t.Fatalf("Compile(%q) returned error: %v", source, err)
	}
	return tpl
}

func renderString(t *testing.T, source string, record map[string]any) string {
	t.Helper()
	out, err := render.Render(compile(t, source), record, nil)
	if err != nil {
		t.Fatalf("Render(%q) returned error: %v", source, err)
	}
	return out
}

func TestRender(t *testing.T) {
	cases := []struct {
		name   string
		source string
		record map[string]any
		want   string
	}{
		{
			name:   "no slots ignores record",
			source: "plain text",
			record: map[string]any{"unused": 1},
			want:   "plain text",
		},
		{
			name:   "single slot",
			source: "Hello {name}!",
			record: map[string]any{"name": "world"},
			want:   "Hello world!",
		},
		{
			name:   "filter applied",
			source: "Hello {name|upper}!",
			record: map[string]any{"name": "world"},
			want:   "Hello WORLD!",
		},
		{
			name:   "multiple slots",
			source: "{greeting}, {name}.",
			record: map[string]any{"greeting": "Hi", "name": "Ada"},
			want:   "Hi, Ada.",
		},
		{
			name:   "repeated slot",
			source: "{x} and {x|upper}",
			record: map[string]any{"x": "go"},
			want:   "go and GO",
		},
		{
			name:   "nil value renders empty",
			source: "[{v}]",
			record: map[string]any{"v": nil},
			want:   "[]",
		},
		{
			name:   "bool value",
			source: "{v}",
			record: map[string]any{"v": true},
			want:   "true",
		},
		{
			name:   "float value",
			source: "{v}",
			record: map[string]any{"v": 3.5},
			want:   "3.5",
		},
		{
			name:   "sequence value",
			source: "{v}",
			record: map[string]any{"v": []any{1, "a"}},
			want:   `[1,"a"]`,
		},
		{
			name:   "map value sorted",
			source: "{v}",
			record: map[string]any{"v": map[string]any{"b": 2, "a": 1}},
			want:   `{"a":1,"b":2}`,
		},
		{
			name:   "chain threads left to right",
			source: "{v|trim|upper|wrap#<<,>>}",
			record: map[string]any{"v": "  padded  "},
			want:   "<<PADDED>>",
		},
		{
			name:   "left pad with zeros",
			source: "{id|pad#5,0}",
			record: map[string]any{"id": 42},
			want:   "00042",
		},
		{
			name:   "map then join",
			source: "{items|map#i => $i.name$|join#', '}",
			record: map[string]any{"items": []any{
				map[string]any{"name": "a"},
				map[string]any{"name": "b"},
			}},
			want: "a, b",
		},
		{
			name:   "path into record value",
			source: "{user|path#address.city}",
			record: map[string]any{"user": map[string]any{
				"address": map[string]any{"city": "Oslo"},
			}},
			want: "Oslo",
		},
		{
			name:   "path fallback",
			source: "{user|path#address.zip,unknown}",
			record: map[string]any{"user": map[string]any{
				"address": map[string]any{"city": "Oslo"},
			}},
			want: "unknown",
		},
		{
			name:   "escaped braces around slot",
			source: `\{{v}\}`,
			record: map[string]any{"v": "x"},
			want:   "{x}",
		},
		{
			name:   "default filter on missing nested value",
			source: "{email|default#none}",
			record: map[string]any{"email": nil},
			want:   "none",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderString(t, tc.source, tc.record); got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderMissingKey(t *testing.T) {
	tpl := compile(t, "Hello {name}!")

	_, err := render.Render(tpl, map[string]any{"other": 1}, nil)
	if err == nil {
		t.Fatal("Render succeeded without the slot key")
	}
	var missing *render.MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingKeyError", err)
	}
	if missing.Slot != "name" {
		t.Errorf("missing slot = %q, want %q", missing.Slot, "name")
	}

	// A present key holding nil satisfies the slot.
	out, err := render.Render(tpl, map[string]any{"name": nil}, nil)
	if err != nil {
		t.Fatalf("Render with nil value returned error: %v", err)
	}
	if out != "Hello !" {
		t.Errorf("Render with nil value = %q", out)
	}
}

func TestRenderUnknownFilter(t *testing.T) {
	tpl := compile(t, "{v|nope}")

	_, err := render.Render(tpl, map[string]any{"v": 1}, nil)
	if err == nil {
		t.Fatal("Render succeeded with unknown filter")
	}
	var unknown *render.UnknownFilterError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownFilterError", err)
	}
	if unknown.Filter != "nope" {
		t.Errorf("unknown filter = %q, want %q", unknown.Filter, "nope")
	}
}

func TestRenderErrorOrder(t *testing.T) {
	// Slots are evaluated in source order, so the first slot's unknown
	// filter is reported before the second slot's missing key.
	tpl := compile(t, "{a|nope}{b}")

	_, err := render.Render(tpl, map[string]any{"a": 1}, nil)
	var unknown *render.UnknownFilterError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownFilterError for the first slot", err)
	}

	// Within one slot the presence check runs before filter lookup.
	_, err = render.Render(tpl, map[string]any{"b": 1}, nil)
	var missing *render.MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingKeyError", err)
	}
	if missing.Slot != "a" {
		t.Errorf("missing slot = %q, want %q", missing.Slot, "a")
	}
}

func TestRenderFilterErrorNamesSlot(t *testing.T) {
	tpl := compile(t, "{n|fixed#2}")

	_, err := render.Render(tpl, map[string]any{"n": "abc"}, nil)
	if err == nil {
		t.Fatal("Render succeeded with non numeric input to fixed")
	}
	msg := err.Error()
	if !strings.Contains(msg, `slot "n"`) {
		t.Errorf("error %q does not name the slot", msg)
	}
	if !strings.Contains(msg, "fixed:") {
		t.Errorf("error %q does not carry the filter prefix", msg)
	}
}

func TestRenderTransform(t *testing.T) {
	tpl := compile(t, "{a} {b|wrap#(,)}")

	var order []string
	policy := &render.Policy{
		Transform: func(slot template.Slot, v value.Value) (value.Value, error) {
			order = append(order, slot.Name)
			return value.String(strings.ToUpper(v.String())), nil
		},
	}

	out, err := render.Render(tpl, map[string]any{"a": "x", "b": "y"}, policy)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "X (Y)" {
		t.Errorf("Render = %q, want %q", out, "X (Y)")
	}
	if diff := cmp.Diff([]string{"a", "b"}, order); diff != "" {
		t.Errorf("transform call order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTransformError(t *testing.T) {
	tpl := compile(t, "{a}")
	policy := &render.Policy{
		Transform: func(slot template.Slot, v value.Value) (value.Value, error) {
			return nil, errors.New("rejected")
		},
	}

	_, err := render.Render(tpl, map[string]any{"a": 1}, policy)
	if err == nil {
		t.Fatal("Render succeeded with failing transform")
	}
	if !strings.Contains(err.Error(), `transform slot "a"`) {
		t.Errorf("error %q does not name the transform slot", err)
	}
}

func TestRenderCustomStringify(t *testing.T) {
	tpl := compile(t, "<{a}><{b}>")
	policy := &render.Policy{
		Stringify: func(v value.Value) string {
			return "[" + v.String() + "]"
		},
	}

	out, err := render.Render(tpl, map[string]any{"a": 1, "b": 2}, policy)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "<[1]><[2]>" {
		t.Errorf("Render = %q, want %q", out, "<[1]><[2]>")
	}
}

func TestRenderPolicyFilters(t *testing.T) {
	tpl := compile(t, "{v|upper}")
	policy := &render.Policy{
		Filters: filters.Map{
			"upper": func(v value.Value, _ []string) (value.Value, error) {
				return value.String("custom"), nil
			},
		},
	}

	out, err := render.Render(tpl, map[string]any{"v": "x"}, policy)
	if err != nil {
		t.Fatalf("Render with policy returned error: %v", err)
	}
	if out != "custom" {
		t.Errorf("policy override = %q, want %q", out, "custom")
	}

	// The override is scoped to that render; the builtin is untouched.
	out, err = render.Render(tpl, map[string]any{"v": "x"}, nil)
	if err != nil {
		t.Fatalf("Render without policy returned error: %v", err)
	}
	if out != "X" {
		t.Errorf("builtin upper after override = %q, want %q", out, "X")
	}
}

func TestTryRenderMirrorsRender(t *testing.T) {
	tpl := compile(t, "Hello {name}")

	ok := render.TryRender(tpl, map[string]any{"name": "Ada"}, nil)
	if !ok.OK {
		t.Fatalf("TryRender failed: %v", ok.Err)
	}
	want, err := render.Render(tpl, map[string]any{"name": "Ada"}, nil)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if ok.Value != want {
		t.Errorf("TryRender value = %q, Render = %q", ok.Value, want)
	}

	bad := render.TryRender(tpl, map[string]any{}, nil)
	if bad.OK {
		t.Fatal("TryRender reported success for a missing key")
	}
	if bad.Value != "" {
		t.Errorf("failed TryRender value = %q, want empty", bad.Value)
	}
	var missing *render.MissingKeyError
	if !errors.As(bad.Err, &missing) {
		t.Errorf("TryRender error type = %T, want *MissingKeyError", bad.Err)
	}
}

func TestToParts(t *testing.T) {
	tpl := compile(t, "List: {items|map#i => $i$|join#-}!")
	record := map[string]any{"items": []any{1, 2}}

	parts, err := render.ToParts(tpl, record, nil)
	if err != nil {
		t.Fatalf("ToParts returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"List: ", "!"}, parts.Chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
	if len(parts.Chunks) != len(parts.Values)+1 {
		t.Errorf("len(Chunks) = %d, len(Values) = %d", len(parts.Chunks), len(parts.Values))
	}
	if diff := cmp.Diff([]value.Value{value.String("1-2")}, parts.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if len(parts.Slots) != 1 || parts.Slots[0].Name != "items" {
		t.Errorf("slots = %+v", parts.Slots)
	}
}

func TestToRawParts(t *testing.T) {
	tpl := compile(t, "{v|upper}")

	parts, err := render.ToRawParts(tpl, map[string]any{"v": "quiet"})
	if err != nil {
		t.Fatalf("ToRawParts returned error: %v", err)
	}
	if diff := cmp.Diff([]value.Value{value.String("quiet")}, parts.Values); diff != "" {
		t.Errorf("raw values mismatch, filters should not run (-want +got):\n%s", diff)
	}

	_, err = render.ToRawParts(tpl, map[string]any{})
	var missing *render.MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("ToRawParts error = %v, want *MissingKeyError", err)
	}
}

func TestRenderConcurrent(t *testing.T) {
	tpl := compile(t, "{n|pad#4,0}")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := render.Render(tpl, map[string]any{"n": 7}, nil)
			if err != nil {
				errs <- err
				return
			}
			if out != "0007" {
				errs <- errors.New("got " + out)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent render: %v", err)
	}
}
