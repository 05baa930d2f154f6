package stream

// Checker validates that an event sequence is well-formed. Feed each
// event to [Checker.Check] in order; the first violation returns a
// [*MalformedStreamError] and leaves the checker unusable.
//
// The zero Checker is ready to use and expects exactly one top-level
// value followed by [EventNone].
type Checker struct {
	// stack holds one byte per open container: '{' or '['.
	stack    []byte
	afterKey bool
	done     bool
}

// Done reports whether a complete top-level value has been checked.
func (c *Checker) Done() bool {
	return c.done
}

// Depth returns the number of currently open containers.
func (c *Checker) Depth() int {
	return len(c.stack)
}

// Check validates the next event of the sequence.
func (c *Checker) Check(ev Event) error {
	if c.done {
		if ev.Kind == EventNone {
			return nil
		}
		return malformed(ev.Kind, "event after top-level value completed")
	}

	switch ev.Kind {
	case EventNone:
		return malformed(ev.Kind, "stream ended before a value completed")

	case EventKey:
		if len(c.stack) == 0 || c.stack[len(c.stack)-1] != '{' {
			return malformed(ev.Kind, "key outside an object")
		}
		if c.afterKey {
			return malformed(ev.Kind, "key follows key without a value")
		}
		c.afterKey = true
		return nil

	case EventNull, EventBool, EventNumber, EventString:
		if err := c.valuePosition(ev.Kind); err != nil {
			return err
		}
		c.valueComplete()
		return nil

	case EventBeginArray:
		if err := c.valuePosition(ev.Kind); err != nil {
			return err
		}
		c.stack = append(c.stack, '[')
		return nil

	case EventBeginObject:
		if err := c.valuePosition(ev.Kind); err != nil {
			return err
		}
		c.stack = append(c.stack, '{')
		return nil

	case EventEndArray:
		if len(c.stack) == 0 || c.stack[len(c.stack)-1] != '[' {
			return malformed(ev.Kind, "end-array without matching begin-array")
		}
		c.stack = c.stack[:len(c.stack)-1]
		c.valueComplete()
		return nil

	case EventEndObject:
		if len(c.stack) == 0 || c.stack[len(c.stack)-1] != '{' {
			return malformed(ev.Kind, "end-object without matching begin-object")
		}
		if c.afterKey {
			return malformed(ev.Kind, "end-object after key without a value")
		}
		c.stack = c.stack[:len(c.stack)-1]
		c.valueComplete()
		return nil

	default:
		return malformed(ev.Kind, "unknown event kind")
	}
}

// valuePosition checks that a value may start here: inside an object a
// key must be pending.
func (c *Checker) valuePosition(kind EventKind) error {
	if len(c.stack) > 0 && c.stack[len(c.stack)-1] == '{' && !c.afterKey {
		return malformed(kind, "value in object position without a key")
	}
	c.afterKey = false
	return nil
}

// valueComplete records that a value finished at the current depth.
func (c *Checker) valueComplete() {
	if len(c.stack) == 0 {
		c.done = true
	}
}
