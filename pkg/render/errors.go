package render

import "fmt"

// MissingKeyError reports a slot whose name has no key in the record.
// Presence is what counts: a key holding nil satisfies its slot.
type MissingKeyError struct {
	Slot string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("render: missing value for slot %q", e.Slot)
}

// UnknownFilterError reports a filter named by the template that the
// effective filter set does not contain.
type UnknownFilterError struct {
	Filter string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("render: unknown filter %q", e.Filter)
}
