package parse

import (
	"fmt"

	"github.com/simon-lentz/jsontree/location"
)

// ErrorKind is the stable classification of a decoding failure.
type ErrorKind int

const (
	// UnexpectedByte reports a byte that is not valid in the current
	// state, including unescaped control characters inside strings.
	UnexpectedByte ErrorKind = iota

	// UnexpectedEOF reports end of input mid-token or mid-structure.
	UnexpectedEOF

	// InvalidEscape reports a bad \X or \uXXXX sequence, or an escape
	// decoding to a code point above 0x7F in an ascii_only build.
	InvalidEscape

	// InvalidSurrogate reports a lone or mispaired \uXXXX surrogate.
	InvalidSurrogate

	// InvalidUTF8 reports ill-formed raw UTF-8, or any byte >= 0x80 in
	// an ascii_only build.
	InvalidUTF8

	// InvalidNumber reports a malformed numeric literal or a literal
	// whose value is not a finite double.
	InvalidNumber

	// ExceededDepth reports container nesting beyond the configured
	// limit.
	ExceededDepth

	// TrailingGarbage reports non-whitespace input after the top-level
	// value.
	TrailingGarbage

	// DuplicateKey reports a repeated object key. It is raised only
	// under [WithStrictKeys]; by default duplicates are retained.
	DuplicateKey
)

// String returns the CamelCase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedByte:
		return "UnexpectedByte"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidSurrogate:
		return "InvalidSurrogate"
	case InvalidUTF8:
		return "InvalidUTF8"
	case InvalidNumber:
		return "InvalidNumber"
	case ExceededDepth:
		return "ExceededDepth"
	case TrailingGarbage:
		return "TrailingGarbage"
	case DuplicateKey:
		return "DuplicateKey"
	default:
		return "Unknown"
	}
}

// message returns the human-readable description used in Error text.
func (k ErrorKind) message() string {
	switch k {
	case UnexpectedByte:
		return "unexpected byte"
	case UnexpectedEOF:
		return "unexpected end of input"
	case InvalidEscape:
		return "invalid escape sequence"
	case InvalidSurrogate:
		return "invalid surrogate pair"
	case InvalidUTF8:
		return "invalid UTF-8"
	case InvalidNumber:
		return "invalid number"
	case ExceededDepth:
		return "nesting depth exceeded"
	case TrailingGarbage:
		return "trailing data after top-level value"
	case DuplicateKey:
		return "duplicate object key"
	default:
		return "unknown error"
	}
}

// ParseError is a decoding failure with a precise location.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Offset is the byte offset at or immediately after the offending
	// byte.
	Offset int

	// Pos is the line/column position derived from Offset.
	Pos location.Position

	// Source identifies the input for [File] and [Reader]; it is the
	// zero SourceID for in-memory input.
	Source location.SourceID
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	loc := fmt.Sprintf("offset %d", e.Offset)
	if !e.Pos.IsZero() {
		loc += " (" + e.Pos.String() + ")"
	}
	msg := e.Kind.message() + " at " + loc
	if !e.Source.IsZero() {
		return e.Source.String() + ": " + msg
	}
	return msg
}
