package filters

import (
	"strings"

	"github.com/goliatone/go-slots/pkg/value"
)

// mapExpr is the parsed form of a map filter expression: the binding
// name and the body split into literal and substitution segments.
type mapExpr struct {
	binding  string
	segments []mapSegment
}

// mapSegment is either literal text or a substitution of the bound
// element, optionally descending a property path.
type mapSegment struct {
	text string
	sub  bool
	path []string
}

// mapFilter applies a "binding => body" expression to every element of a
// sequence, producing a sequence of rendered strings.
func mapFilter(v value.Value, args []string) (value.Value, error) {
	if len(args) == 0 {
		return nil, Errorf("map", "missing expression")
	}
	expr, err := parseMapExpr(args[0])
	if err != nil {
		return nil, err
	}
	seq, ok := v.(value.Sequence)
	if !ok {
		return nil, Errorf("map", "input is not a sequence (got %s)", value.Kind(v))
	}
	out := make(value.Sequence, len(seq))
	for i, elem := range seq {
		out[i] = value.String(expr.render(elem))
	}
	return out, nil
}

// parseMapExpr parses "binding => body". The body may reference the
// element as $binding$ or reach into it with $binding.key.key$; any
// dollar sign that does not match that shape stays literal.
func parseMapExpr(arg string) (*mapExpr, error) {
	sep := strings.Index(arg, "=>")
	if sep < 0 {
		return nil, Errorf("map", "missing \"=>\" in %q", arg)
	}
	binding := strings.TrimSpace(arg[:sep])
	if !isIdentifier(binding) {
		return nil, Errorf("map", "invalid binding %q", binding)
	}
	body := strings.TrimSpace(arg[sep+2:])
	if body == "" {
		return nil, Errorf("map", "empty body in %q", arg)
	}
	body = decodeBodyEscapes(body)
	return &mapExpr{binding: binding, segments: splitSegments(body, binding)}, nil
}

// decodeBodyEscapes rewrites \n, \t, and \r sequences in the body into
// their control characters. Other backslashes pass through untouched.
func decodeBodyEscapes(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		switch body[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i+1])
		}
		i++
	}
	return b.String()
}

// splitSegments cuts the body into literal runs and substitutions.
func splitSegments(body, binding string) []mapSegment {
	var segs []mapSegment
	var lit []byte
	i := 0
	for i < len(body) {
		if body[i] != '$' {
			lit = append(lit, body[i])
			i++
			continue
		}
		path, width := matchSubstitution(body[i:], binding)
		if width == 0 {
			lit = append(lit, '$')
			i++
			continue
		}
		if len(lit) > 0 {
			segs = append(segs, mapSegment{text: string(lit)})
			lit = nil
		}
		segs = append(segs, mapSegment{sub: true, path: path})
		i += width
	}
	if len(lit) > 0 {
		segs = append(segs, mapSegment{text: string(lit)})
	}
	return segs
}

// matchSubstitution tries to read $binding(.key)*$ at the start of s. It
// returns the path (empty for the bare binding) and the number of bytes
// consumed, or zero when s does not start a substitution.
func matchSubstitution(s, binding string) ([]string, int) {
	i := 1
	if !strings.HasPrefix(s[i:], binding) {
		return nil, 0
	}
	i += len(binding)
	var path []string
	for i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && isKeyChar(s[i]) {
			i++
		}
		if i == start {
			return nil, 0
		}
		path = append(path, s[start:i])
	}
	if i >= len(s) || s[i] != '$' {
		return nil, 0
	}
	return path, i + 1
}

// render produces the output string for one sequence element.
func (e *mapExpr) render(elem value.Value) string {
	var b strings.Builder
	for _, seg := range e.segments {
		if !seg.sub {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(display(resolveMapPath(elem, seg.path)))
	}
	return b.String()
}

// resolveMapPath descends through keyed maps; a missing step yields Null
// so the substitution renders as empty text.
func resolveMapPath(elem value.Value, path []string) value.Value {
	cur := elem
	for _, key := range path {
		m, ok := cur.(value.Map)
		if !ok {
			return value.Null{}
		}
		next, ok := m[key]
		if !ok {
			return value.Null{}
		}
		cur = next
	}
	return cur
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func isKeyChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
