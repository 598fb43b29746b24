package render

import (
	"fmt"

	"github.com/goliatone/go-slots/pkg/template"
	"github.com/goliatone/go-slots/pkg/value"
)

// evaluate produces one final value per slot. Missing record keys and
// unknown filters abort immediately with their typed errors; filter
// failures are wrapped with the slot they occurred in.
func evaluate(tpl *template.Template, record map[string]any, eff effective) ([]value.Value, error) {
	slots := tpl.Slots()
	out := make([]value.Value, len(slots))
	for i, slot := range slots {
		v, err := evaluateSlot(slot, record, eff)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evaluateSlot(slot template.Slot, record map[string]any, eff effective) (value.Value, error) {
	raw, ok := record[slot.Name]
	if !ok {
		return nil, &MissingKeyError{Slot: slot.Name}
	}
	v := value.FromGo(raw)

	if eff.transform != nil {
		tv, err := eff.transform(slot, v)
		if err != nil {
			return nil, fmt.Errorf("render: transform slot %q: %w", slot.Name, err)
		}
		v = orNull(tv)
	}

	for _, call := range slot.Chain {
		fn, ok := eff.filters[call.Name]
		if !ok {
			return nil, &UnknownFilterError{Filter: call.Name}
		}
		fv, err := fn(v, call.Args)
		if err != nil {
			return nil, fmt.Errorf("render: slot %q: %w", slot.Name, err)
		}
		v = orNull(fv)
	}
	return v, nil
}

func orNull(v value.Value) value.Value {
	if v == nil {
		return value.Null{}
	}
	return v
}
