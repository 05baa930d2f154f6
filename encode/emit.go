package encode

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/simon-lentz/jsontree/internal/lex"
	"github.com/simon-lentz/jsontree/stream"
	"github.com/simon-lentz/jsontree/value"
)

const hexDigits = "0123456789ABCDEF"

// emitter renders an event stream into an in-memory buffer.
type emitter struct {
	buf    []byte
	indent int // spaces per level; 0 means compact

	// firsts has one entry per open container, true until the first
	// element has been written.
	firsts   []bool
	afterKey bool
}

// emit appends the rendering of one event. The caller has already
// validated well-formedness.
func (e *emitter) emit(ev stream.Event) error {
	switch ev.Kind {
	case stream.EventNull:
		e.valuePrefix()
		e.buf = append(e.buf, "null"...)
	case stream.EventBool:
		e.valuePrefix()
		e.buf = strconv.AppendBool(e.buf, ev.Bool)
	case stream.EventNumber:
		e.valuePrefix()
		return e.number(ev.Num)
	case stream.EventString:
		e.valuePrefix()
		e.str(ev.Str)
	case stream.EventKey:
		e.elementPrefix()
		e.str(ev.Str)
		e.buf = append(e.buf, ':')
		if e.indent > 0 {
			e.buf = append(e.buf, ' ')
		}
		e.afterKey = true
	case stream.EventBeginArray:
		e.valuePrefix()
		e.buf = append(e.buf, '[')
		e.firsts = append(e.firsts, true)
	case stream.EventBeginObject:
		e.valuePrefix()
		e.buf = append(e.buf, '{')
		e.firsts = append(e.firsts, true)
	case stream.EventEndArray:
		e.close(']')
	case stream.EventEndObject:
		e.close('}')
	}
	return nil
}

// valuePrefix positions the cursor for a value: nothing after a key,
// the element separator otherwise.
func (e *emitter) valuePrefix() {
	if e.afterKey {
		e.afterKey = false
		return
	}
	e.elementPrefix()
}

// elementPrefix writes the separator before an element or key: a comma
// unless this is the container's first entry, then the line break and
// indentation in indented mode. Top-level values take no prefix.
func (e *emitter) elementPrefix() {
	if len(e.firsts) == 0 {
		return
	}
	if e.firsts[len(e.firsts)-1] {
		e.firsts[len(e.firsts)-1] = false
	} else {
		e.buf = append(e.buf, ',')
	}
	e.newline(len(e.firsts))
}

// close ends the innermost container. Empty containers stay on one
// line; otherwise the closing token moves to its own line in indented
// mode.
func (e *emitter) close(tok byte) {
	empty := e.firsts[len(e.firsts)-1]
	e.firsts = e.firsts[:len(e.firsts)-1]
	if !empty {
		e.newline(len(e.firsts))
	}
	e.buf = append(e.buf, tok)
}

// newline breaks the line and indents to the given depth in indented
// mode; it is a no-op in compact mode.
func (e *emitter) newline(depth int) {
	if e.indent == 0 {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < depth*e.indent; i++ {
		e.buf = append(e.buf, ' ')
	}
}

// number appends a numeric token. Integers emit their exact decimal;
// doubles emit the shortest decimal that round-trips, choosing the 'e'
// form only for magnitudes the 'f' form would bloat, the same policy
// as the standard library's JSON encoder.
func (e *emitter) number(n value.Number) error {
	switch n.Form() {
	case value.IntForm:
		i, _ := n.Int64()
		e.buf = strconv.AppendInt(e.buf, i, 10)
		return nil
	case value.UintForm:
		u, _ := n.Uint64()
		e.buf = strconv.AppendUint(e.buf, u, 10)
		return nil
	default:
		f := n.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return &InvalidNumberError{Value: f}
		}
		abs := math.Abs(f)
		format := byte('f')
		if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			format = 'e'
		}
		e.buf = strconv.AppendFloat(e.buf, f, format, -1, 64)
		if format == 'e' {
			// Clean up e-09 to e-9.
			b := e.buf
			if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
				b[n-2] = b[n-1]
				e.buf = b[:n-1]
			}
		}
		return nil
	}
}

// str appends a quoted, escaped string token.
func (e *emitter) str(s string) {
	e.buf = append(e.buf, '"')
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if !lex.NeedsEscape[b] {
			i++
			continue
		}
		e.buf = append(e.buf, s[start:i]...)

		if b < 0x80 {
			switch b {
			case '"':
				e.buf = append(e.buf, '\\', '"')
			case '\\':
				e.buf = append(e.buf, '\\', '\\')
			case '\b':
				e.buf = append(e.buf, '\\', 'b')
			case '\f':
				e.buf = append(e.buf, '\\', 'f')
			case '\n':
				e.buf = append(e.buf, '\\', 'n')
			case '\r':
				e.buf = append(e.buf, '\\', 'r')
			case '\t':
				e.buf = append(e.buf, '\\', 't')
			default:
				e.escapeRune(rune(b))
			}
			i++
		} else {
			// Reached only under ascii_only: escape the code point.
			r, size := utf8.DecodeRuneInString(s[i:])
			e.escapeRune(r)
			i += size
		}
		start = i
	}
	e.buf = append(e.buf, s[start:]...)
	e.buf = append(e.buf, '"')
}

// escapeRune appends \uXXXX for r, as a surrogate pair when r is above
// the basic multilingual plane.
func (e *emitter) escapeRune(r rune) {
	if r > 0xFFFF {
		r -= 0x10000
		e.escapeRune(0xD800 + (r>>10)&0x3FF)
		e.escapeRune(0xDC00 + r&0x3FF)
		return
	}
	e.buf = append(e.buf, '\\', 'u',
		hexDigits[r>>12&0xF], hexDigits[r>>8&0xF], hexDigits[r>>4&0xF], hexDigits[r&0xF])
}
