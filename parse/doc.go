// Package parse implements a single-pass, byte-driven JSON decoder.
//
// The decoder accepts exactly the ECMA-404 / RFC 8259 grammar, plus a
// tolerated leading UTF-8 byte order mark. It is an explicit pushdown
// state machine over the byte classification table in internal/lex, so
// stack usage stays bounded and the configurable container depth limit
// (default 128, see [WithMaxDepth]) is enforced uniformly; strings and
// numbers are handled by dedicated inner scanners that re-enter the
// driver on completion.
//
// Every entry point either yields a complete result or a single error.
// Decoding failures are reported as [*ParseError] carrying an
// [ErrorKind], the byte offset at or immediately after the offending
// byte, and the line/column position derived from it. The parser halts
// on the first error; no partial tree is returned.
//
// [Bytes], [String], [Reader], and [File] materialise a [value.Value]
// tree. [Into] instead pushes the document into a [stream.Consumer] as
// it is decoded, without building a tree.
package parse
