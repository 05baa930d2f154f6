package parse

import (
	"github.com/simon-lentz/jsontree/internal/lex"
	"github.com/simon-lentz/jsontree/location"
	"github.com/simon-lentz/jsontree/stream"
)

// state enumerates the positions of the pushdown machine between tokens.
type state int

const (
	// stateStart expects the top-level value.
	stateStart state = iota
	// stateArrayElemOrClose follows '[': an element or ']'.
	stateArrayElemOrClose
	// stateArrayElem follows ',' in an array: an element is required.
	stateArrayElem
	// stateArrayCommaOrClose follows an array element: ',' or ']'.
	stateArrayCommaOrClose
	// stateObjectKeyOrClose follows '{': a key or '}'.
	stateObjectKeyOrClose
	// stateObjectKey follows ',' in an object: a key is required.
	stateObjectKey
	// stateObjectColon follows a key: ':' is required.
	stateObjectColon
	// stateObjectValue follows ':': a member value is required.
	stateObjectValue
	// stateObjectCommaOrClose follows a member value: ',' or '}'.
	stateObjectCommaOrClose
	// stateEnd follows the top-level value: only whitespace may remain.
	stateEnd
)

// frame is one entry of the container stack.
type frame struct {
	object bool
	// seen tracks keys for duplicate detection; non-nil only under
	// WithStrictKeys.
	seen map[string]struct{}
}

// parser decodes one document from a byte slice, pushing events into
// sink. Its working set is O(depth + current token length).
type parser struct {
	data []byte
	pos  int
	sink stream.Consumer

	maxDepth   int
	strictKeys bool

	state state
	stack []frame
}

// fail builds a *ParseError at the given offset, deriving line/column
// from the input. Position computation is confined to this error path.
func (p *parser) fail(kind ErrorKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Pos: location.At(p.data, offset)}
}

// run drives the state machine over the whole input.
func (p *parser) run() error {
	// Tolerate and strip a leading UTF-8 byte order mark.
	if len(p.data) >= 3 && p.data[0] == 0xEF && p.data[1] == 0xBB && p.data[2] == 0xBF {
		p.pos = 3
	}

	for {
		for p.pos < len(p.data) && lex.Classes[p.data[p.pos]] == lex.ClassSpace {
			p.pos++
		}
		if p.pos >= len(p.data) {
			if p.state == stateEnd {
				return nil
			}
			return p.fail(UnexpectedEOF, len(p.data))
		}

		b := p.data[p.pos]
		cls := lex.Classes[b]

		switch p.state {
		case stateStart, stateArrayElem, stateObjectValue:
			if err := p.value(b, cls); err != nil {
				return err
			}

		case stateArrayElemOrClose:
			if cls == lex.ClassRBracket {
				if err := p.closeArray(); err != nil {
					return err
				}
				continue
			}
			if err := p.value(b, cls); err != nil {
				return err
			}

		case stateArrayCommaOrClose:
			switch cls {
			case lex.ClassComma:
				p.pos++
				p.state = stateArrayElem
			case lex.ClassRBracket:
				if err := p.closeArray(); err != nil {
					return err
				}
			default:
				return p.fail(UnexpectedByte, p.pos)
			}

		case stateObjectKeyOrClose:
			switch cls {
			case lex.ClassQuote:
				if err := p.key(); err != nil {
					return err
				}
			case lex.ClassRBrace:
				if err := p.closeObject(); err != nil {
					return err
				}
			default:
				return p.fail(UnexpectedByte, p.pos)
			}

		case stateObjectKey:
			if cls != lex.ClassQuote {
				return p.fail(UnexpectedByte, p.pos)
			}
			if err := p.key(); err != nil {
				return err
			}

		case stateObjectColon:
			if cls != lex.ClassColon {
				return p.fail(UnexpectedByte, p.pos)
			}
			p.pos++
			p.state = stateObjectValue

		case stateObjectCommaOrClose:
			switch cls {
			case lex.ClassComma:
				p.pos++
				p.state = stateObjectKey
			case lex.ClassRBrace:
				if err := p.closeObject(); err != nil {
					return err
				}
			default:
				return p.fail(UnexpectedByte, p.pos)
			}

		default: // stateEnd
			return p.fail(TrailingGarbage, p.pos)
		}
	}
}

// value consumes one value whose first byte is b.
func (p *parser) value(b byte, cls lex.Class) error {
	switch cls {
	case lex.ClassLBrace:
		if err := p.push(true); err != nil {
			return err
		}
		if err := p.sink.BeginObject(); err != nil {
			return err
		}
		p.pos++
		p.state = stateObjectKeyOrClose
		return nil

	case lex.ClassLBracket:
		if err := p.push(false); err != nil {
			return err
		}
		if err := p.sink.BeginArray(); err != nil {
			return err
		}
		p.pos++
		p.state = stateArrayElemOrClose
		return nil

	case lex.ClassQuote:
		s, perr := p.scanString()
		if perr != nil {
			return perr
		}
		if err := p.sink.String(s); err != nil {
			return err
		}
		p.finishValue()
		return nil

	case lex.ClassMinus, lex.ClassZero, lex.ClassDigit:
		n, perr := p.scanNumber()
		if perr != nil {
			return perr
		}
		if err := p.sink.Number(n); err != nil {
			return err
		}
		p.finishValue()
		return nil

	case lex.ClassAlpha:
		switch b {
		case 't':
			if err := p.literal("true"); err != nil {
				return err
			}
			if err := p.sink.Bool(true); err != nil {
				return err
			}
		case 'f':
			if err := p.literal("false"); err != nil {
				return err
			}
			if err := p.sink.Bool(false); err != nil {
				return err
			}
		case 'n':
			if err := p.literal("null"); err != nil {
				return err
			}
			if err := p.sink.Null(); err != nil {
				return err
			}
		default:
			return p.fail(UnexpectedByte, p.pos)
		}
		p.finishValue()
		return nil

	default:
		return p.fail(UnexpectedByte, p.pos)
	}
}

// key consumes an object key and the transition to its colon.
func (p *parser) key() error {
	keyOffset := p.pos
	s, perr := p.scanString()
	if perr != nil {
		return perr
	}
	if p.strictKeys {
		top := &p.stack[len(p.stack)-1]
		if _, dup := top.seen[s]; dup {
			return p.fail(DuplicateKey, keyOffset)
		}
		top.seen[s] = struct{}{}
	}
	if err := p.sink.Key(s); err != nil {
		return err
	}
	p.state = stateObjectColon
	return nil
}

// push opens a container, enforcing the depth limit.
func (p *parser) push(object bool) error {
	if len(p.stack) >= p.maxDepth {
		return p.fail(ExceededDepth, p.pos)
	}
	f := frame{object: object}
	if object && p.strictKeys {
		f.seen = make(map[string]struct{})
	}
	p.stack = append(p.stack, f)
	return nil
}

func (p *parser) closeArray() error {
	p.stack = p.stack[:len(p.stack)-1]
	if err := p.sink.EndArray(); err != nil {
		return err
	}
	p.pos++
	p.finishValue()
	return nil
}

func (p *parser) closeObject() error {
	p.stack = p.stack[:len(p.stack)-1]
	if err := p.sink.EndObject(); err != nil {
		return err
	}
	p.pos++
	p.finishValue()
	return nil
}

// finishValue transitions to the state that follows a completed value
// at the current depth.
func (p *parser) finishValue() {
	if len(p.stack) == 0 {
		p.state = stateEnd
		return
	}
	if p.stack[len(p.stack)-1].object {
		p.state = stateObjectCommaOrClose
	} else {
		p.state = stateArrayCommaOrClose
	}
}

// literal consumes the keyword lit at the current position. On mismatch
// the error points at the first diverging byte.
func (p *parser) literal(lit string) error {
	for i := 0; i < len(lit); i++ {
		if p.pos+i >= len(p.data) {
			return p.fail(UnexpectedEOF, len(p.data))
		}
		if p.data[p.pos+i] != lit[i] {
			return p.fail(UnexpectedByte, p.pos+i)
		}
	}
	p.pos += len(lit)
	return nil
}
