package template

// bodyParser walks a raw slot body. Positions in errors are reported
// relative to the full template source through base.
type bodyParser struct {
	body string
	base int
	i    int
}

// parseSlotBody turns a captured slot body into a Slot descriptor. The
// grammar is a slot name followed by zero or more pipe separated filter
// calls, each optionally carrying a '#' argument list.
func parseSlotBody(raw rawSlot) (Slot, error) {
	p := &bodyParser{body: raw.body, base: raw.offset}

	p.skipSpace()
	name := p.ident()
	if name == "" {
		return Slot{}, parseErrorf(p.pos(), "missing slot name")
	}
	slot := Slot{Name: name}

	p.skipSpace()
	if p.peek() == '#' {
		return Slot{}, parseErrorf(p.pos(), "arguments require a filter")
	}

	for p.peek() == '|' {
		p.i++
		p.skipSpace()
		fname := p.ident()
		if fname == "" {
			return Slot{}, parseErrorf(p.pos(), "missing filter name")
		}
		call := FilterCall{Name: fname}

		p.skipSpace()
		if p.peek() == '#' {
			p.i++
			args, err := p.args()
			if err != nil {
				return Slot{}, err
			}
			call.Args = args
		}
		slot.Chain = append(slot.Chain, call)
		p.skipSpace()
	}

	if p.i < len(p.body) {
		return Slot{}, parseErrorf(p.pos(), "unexpected %q", string(p.body[p.i]))
	}
	return slot, nil
}

// args parses a comma separated argument list. The list runs to the end
// of the body or to the next unescaped pipe, which starts another filter.
func (p *bodyParser) args() ([]string, error) {
	args := make([]string, 0, 2)
	for {
		arg, more, err := p.arg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !more {
			return args, nil
		}
	}
}

// arg consumes a single argument and reports whether a comma followed,
// meaning another argument is expected. Whitespace typed directly is
// trimmed from both ends; whitespace that arrived through an escape or
// inside quotes is kept.
func (p *bodyParser) arg() (string, bool, error) {
	var out []byte
	var kept []bool

	for p.i < len(p.body) {
		switch c := p.body[p.i]; c {
		case ',':
			p.i++
			return trimSoft(out, kept), true, nil
		case '|':
			return trimSoft(out, kept), false, nil
		case '\\':
			if p.i+1 >= len(p.body) {
				out = append(out, '\\')
				kept = append(kept, false)
				p.i++
			} else {
				out = append(out, escapeChar(p.body[p.i+1]))
				kept = append(kept, true)
				p.i += 2
			}
		case '\'', '"':
			var err error
			out, kept, err = p.quoted(c, out, kept)
			if err != nil {
				return "", false, err
			}
		default:
			out = append(out, c)
			kept = append(kept, false)
			p.i++
		}
	}
	return trimSoft(out, kept), false, nil
}

// quoted consumes a run delimited by quote, appending its decoded content
// flagged as kept. The closing quote must appear before the body ends.
func (p *bodyParser) quoted(quote byte, out []byte, kept []bool) ([]byte, []bool, error) {
	start := p.pos()
	p.i++
	for p.i < len(p.body) {
		c := p.body[p.i]
		if c == quote {
			p.i++
			return out, kept, nil
		}
		if c == '\\' && p.i+1 < len(p.body) {
			out = append(out, escapeChar(p.body[p.i+1]))
			kept = append(kept, true)
			p.i += 2
			continue
		}
		out = append(out, c)
		kept = append(kept, true)
		p.i++
	}
	return nil, nil, parseErrorf(start, "unterminated quoted argument")
}

// trimSoft drops leading and trailing whitespace that was typed directly,
// leaving escaped and quoted whitespace in place.
func trimSoft(out []byte, kept []bool) string {
	start, end := 0, len(out)
	for start < end && !kept[start] && isSpace(out[start]) {
		start++
	}
	for end > start && !kept[end-1] && isSpace(out[end-1]) {
		end--
	}
	return string(out[start:end])
}

func (p *bodyParser) skipSpace() {
	for p.i < len(p.body) && isSpace(p.body[p.i]) {
		p.i++
	}
}

func (p *bodyParser) peek() byte {
	if p.i >= len(p.body) {
		return 0
	}
	return p.body[p.i]
}

func (p *bodyParser) pos() int { return p.base + p.i }

// ident consumes a letter or underscore followed by letters, digits, or
// underscores. It returns "" when the next character cannot start one.
func (p *bodyParser) ident() string {
	start := p.i
	if p.i < len(p.body) && isIdentStart(p.body[p.i]) {
		p.i++
		for p.i < len(p.body) && isIdentPart(p.body[p.i]) {
			p.i++
		}
	}
	return p.body[start:p.i]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
