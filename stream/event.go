package stream

import (
	"strconv"

	"github.com/simon-lentz/jsontree/value"
)

// EventKind identifies one event in a document-order traversal.
type EventKind int

const (
	// EventNone is the zero kind. A [Producer] returns it to signal the
	// end of its stream.
	EventNone EventKind = iota
	// EventNull is a null scalar.
	EventNull
	// EventBool is a boolean scalar; the payload is in [Event.Bool].
	EventBool
	// EventNumber is a numeric scalar; the payload is in [Event.Num].
	EventNumber
	// EventString is a string scalar; the payload is in [Event.Str].
	EventString
	// EventKey is an object member key; the key is in [Event.Str].
	EventKey
	// EventBeginArray opens an array.
	EventBeginArray
	// EventEndArray closes the innermost open array.
	EventEndArray
	// EventBeginObject opens an object.
	EventBeginObject
	// EventEndObject closes the innermost open object.
	EventEndObject
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventNull:
		return "null"
	case EventBool:
		return "bool"
	case EventNumber:
		return "number"
	case EventString:
		return "string"
	case EventKey:
		return "key"
	case EventBeginArray:
		return "begin-array"
	case EventEndArray:
		return "end-array"
	case EventBeginObject:
		return "begin-object"
	case EventEndObject:
		return "end-object"
	default:
		return "unknown"
	}
}

// Event is one element of an event stream. Which payload field is
// meaningful depends on Kind; the others are zero.
type Event struct {
	Kind EventKind

	// Str holds the key for EventKey and the payload for EventString.
	Str string

	// Num holds the payload for EventNumber.
	Num value.Number

	// Bool holds the payload for EventBool.
	Bool bool
}

// String returns a diagnostic rendering of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventBool:
		return "bool(" + strconv.FormatBool(e.Bool) + ")"
	case EventNumber:
		return "number(" + e.Num.String() + ")"
	case EventString:
		return "string(" + strconv.Quote(e.Str) + ")"
	case EventKey:
		return "key(" + strconv.Quote(e.Str) + ")"
	default:
		return e.Kind.String()
	}
}

// Consumer receives a document as a sequence of push calls.
//
// The driver guarantees a well-formed sequence; see the package
// documentation. Any non-nil error aborts the traversal and is
// surfaced to the driver's caller unchanged.
type Consumer interface {
	BeginObject() error
	// Key announces the next object member; exactly one value (scalar
	// or container) follows each Key.
	Key(key string) error
	EndObject() error

	BeginArray() error
	EndArray() error

	Null() error
	Bool(b bool) error
	Number(n value.Number) error
	String(s string) error
}

// Producer yields a document as a sequence of pull calls.
//
// Next returns the next event, or an event of kind [EventNone] once the
// stream is exhausted. A non-nil error aborts the traversal; callers
// surface it unchanged.
type Producer interface {
	Next() (Event, error)
}

// Feed pushes a single event into a consumer, dispatching on kind.
// Events of kind [EventNone] are ignored.
func Feed(c Consumer, ev Event) error {
	switch ev.Kind {
	case EventNull:
		return c.Null()
	case EventBool:
		return c.Bool(ev.Bool)
	case EventNumber:
		return c.Number(ev.Num)
	case EventString:
		return c.String(ev.Str)
	case EventKey:
		return c.Key(ev.Str)
	case EventBeginArray:
		return c.BeginArray()
	case EventEndArray:
		return c.EndArray()
	case EventBeginObject:
		return c.BeginObject()
	case EventEndObject:
		return c.EndObject()
	default:
		return nil
	}
}
