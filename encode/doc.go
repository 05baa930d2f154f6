// Package encode serialises JSON text from value trees or event
// streams.
//
// Two modes exist. Compact output has no whitespace between tokens.
// Indented output places one token group per line, each nesting level
// adding a fixed indent (two spaces unless configured), with one space
// after every colon.
//
// All emission goes through the event stream: [Compact] and [Indented]
// drive a [stream.ValueProducer] over the tree, and [From] drives any
// external [stream.Producer] directly, validating well-formedness as it
// goes. Output is buffered in memory and handed to the sink in a single
// Write, so a sink error never leaves partial state ambiguity beyond
// that one call; the underlying I/O error is surfaced verbatim.
//
// Strings escape exactly what ECMA-404 requires: the quote, the
// backslash, and all code points below 0x20 (short escapes where they
// exist, \u00XX otherwise). The solidus is emitted literally and
// non-ASCII code points are emitted as raw UTF-8, unless the ascii_only
// build flag is set, in which case every code point above 0x7F becomes
// a \uXXXX escape (surrogate pairs beyond U+FFFF). Integers emit their
// exact decimal; doubles emit the shortest decimal that parses back to
// the same IEEE-754 value. Non-finite doubles fail with
// [*InvalidNumberError].
package encode
