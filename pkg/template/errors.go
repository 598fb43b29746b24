package template

import "fmt"

// ParseError describes a syntax problem found while compiling a template
// source. Offset is the byte position in the source where the problem was
// detected.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template: parse error at offset %d: %s", e.Offset, e.Msg)
}

func parseErrorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
