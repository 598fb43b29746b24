package template

import "strings"

// escapeChar maps the character following a backslash to the byte it
// decodes to. Control escapes produce their control character; every
// other character stands for itself, which covers backslash, braces, and
// quotes.
func escapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case '0':
		return 0
	}
	return c
}

// rawSlot is a slot body captured by the scanner before parsing. offset
// is the position of the body's first character in the source.
type rawSlot struct {
	body   string
	offset int
}

// scan splits source into decoded literal chunks and raw slot bodies in a
// single pass. On success len(chunks) == len(slots)+1: the text before
// every slot, between consecutive slots, and after the last one.
func scan(source string) ([]string, []rawSlot, error) {
	chunks := make([]string, 0, 4)
	var slots []rawSlot
	var buf strings.Builder

	i, n := 0, len(source)
	for i < n {
		switch c := source[i]; c {
		case '\\':
			if i+1 >= n {
				buf.WriteByte('\\')
				i++
			} else {
				buf.WriteByte(escapeChar(source[i+1]))
				i += 2
			}
		case '{':
			end, err := findSlotEnd(source, i)
			if err != nil {
				return nil, nil, err
			}
			chunks = append(chunks, buf.String())
			buf.Reset()
			slots = append(slots, rawSlot{body: source[i+1 : end], offset: i + 1})
			i = end + 1
		default:
			buf.WriteByte(c)
			i++
		}
	}
	chunks = append(chunks, buf.String())
	return chunks, slots, nil
}

// findSlotEnd locates the unescaped closing brace for the slot opened at
// open. A backslash inside the body hides the following character from
// brace matching.
func findSlotEnd(source string, open int) (int, error) {
	for j := open + 1; j < len(source); {
		switch source[j] {
		case '\\':
			j += 2
		case '{':
			return 0, parseErrorf(j, "unexpected '{' inside slot")
		case '}':
			return j, nil
		default:
			j++
		}
	}
	return 0, parseErrorf(open, "unterminated slot")
}
