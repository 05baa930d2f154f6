// Package stream defines the event model that links the parser, the
// encoder, and user record types without an intermediate value tree.
//
// An event stream traverses a JSON document in order: begin/end events
// bracket containers, key events precede each object member, and scalar
// events carry the primitive payloads. Two directions exist:
//
//   - [Consumer] is the push side: the parser (or any other driver)
//     calls its methods as the document unfolds.
//   - [Producer] is the pull side: the encoder repeatedly calls Next
//     until the stream ends.
//
// Streams produced by this module are well-formed: every begin event is
// matched by its end event in LIFO order, every object key is followed
// by exactly one value, arrays contain only values, and scalars are
// atomic. [Checker] validates these rules for streams of external
// origin.
//
// [TreeBuilder] and [ValueProducer] bridge between event streams and
// [value.Value] trees in both directions.
package stream
