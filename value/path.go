package value

import (
	"strconv"
	"strings"
)

// stepKind discriminates the two step variants of a [Path].
type stepKind uint8

const (
	stepKey stepKind = iota
	stepPos
)

// step is one navigation step: a string key into an object or a
// non-negative position into an array.
type step struct {
	kind stepKind
	key  string
	pos  int
}

// Path is a sequence of index steps used by [Value.Resolve] and
// [Value.Ensure].
//
// A Path is immutable; each builder method returns a new Path with the
// appended step, so prefixes can be shared safely across goroutines.
// The zero value is the root path; use [Root] for clarity.
type Path struct {
	steps []step
}

// Root returns the empty path addressing the value itself.
func Root() Path {
	return Path{}
}

// Key appends an object-key step.
func (p Path) Key(key string) Path {
	return p.append(step{kind: stepKey, key: key})
}

// Index appends an array-position step. Index panics if i is negative;
// positions are non-negative by definition.
func (p Path) Index(i int) Path {
	if i < 0 {
		panic("value.Path: negative index " + strconv.Itoa(i))
	}
	return p.append(step{kind: stepPos, pos: i})
}

// Len returns the number of steps; the root path has length 0.
func (p Path) Len() int {
	return len(p.steps)
}

// IsRoot reports whether the path has no steps.
func (p Path) IsRoot() bool {
	return len(p.steps) == 0
}

// Parent returns the path without its final step. The root's parent is
// the root.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		return p
	}
	parent := Path{steps: make([]step, len(p.steps)-1)}
	copy(parent.steps, p.steps[:len(p.steps)-1])
	return parent
}

// String returns the canonical rendering of the path, rooted at "$".
// Identifier-safe keys use dot notation ("$.name"); other keys use
// bracketed quoting ("$[\"a b\"]"); positions use brackets ("$[3]").
func (p Path) String() string {
	if len(p.steps) == 0 {
		return "$"
	}
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range p.steps {
		switch s.kind {
		case stepPos:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.pos))
			sb.WriteByte(']')
		default:
			if isIdentifierSafe(s.key) {
				sb.WriteByte('.')
				sb.WriteString(s.key)
			} else {
				sb.WriteByte('[')
				sb.WriteString(strconv.Quote(s.key))
				sb.WriteByte(']')
			}
		}
	}
	return sb.String()
}

func (p Path) append(s step) Path {
	child := Path{steps: make([]step, len(p.steps), len(p.steps)+1)}
	copy(child.steps, p.steps)
	child.steps = append(child.steps, s)
	return child
}

// isIdentifierSafe reports whether key can be rendered with dot
// notation: non-empty, starting with an ASCII letter or underscore,
// containing only ASCII letters, digits, and underscores.
func isIdentifierSafe(key string) bool {
	if len(key) == 0 {
		return false
	}
	for i := 0; i < len(key); i++ {
		b := key[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		case b >= '0' && b <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
