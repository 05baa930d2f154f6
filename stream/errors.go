package stream

// MalformedStreamError reports an event sequence that violates the
// well-formedness rules: unmatched begin/end events, a value in an
// object position without a preceding key, a key outside an object, or
// events after the top-level value completed.
type MalformedStreamError struct {
	// Reason describes the violated rule.
	Reason string
	// Kind is the offending event's kind.
	Kind EventKind
}

// Error implements the error interface.
func (e *MalformedStreamError) Error() string {
	return "malformed event stream: " + e.Reason + " (at " + e.Kind.String() + " event)"
}

func malformed(kind EventKind, reason string) *MalformedStreamError {
	return &MalformedStreamError{Reason: reason, Kind: kind}
}
