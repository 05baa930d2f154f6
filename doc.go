// Package jsontree provides a general-purpose JSON codec: a mutable
// value tree with pluggable container backings, a single-pass byte-driven
// parser, a compact and indented encoder, and a streaming event
// interface for bridging directly to user-defined record types.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source identity and line/column positions for errors
//
//	Core tier:
//	  - value: The tagged value tree, container backings, index paths
//	  - stream: Event model, Consumer/Producer, tree bridges
//	  - parse: Byte stream -> value tree or event stream
//	  - encode: Value tree or event stream -> JSON text
//
// # Entry Points
//
// Parsing:
//
//	import "github.com/simon-lentz/jsontree/parse"
//
//	v, err := parse.Bytes(data)
//	if err != nil {
//	    var perr *parse.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Kind, perr.Offset, perr.Pos
//	    }
//	}
//
// Encoding:
//
//	import "github.com/simon-lentz/jsontree/encode"
//
//	var buf bytes.Buffer
//	if err := encode.Compact(v, &buf); err != nil { ... }
//	if err := encode.Indented(v, &buf, 2); err != nil { ... }
//
// Navigation and mutation:
//
//	import "github.com/simon-lentz/jsontree/value"
//
//	leaf := v.Resolve(value.Root().Key("a").Index(3))   // read, total
//	leaf = v.Ensure(value.Root().Key("a").Index(3))     // create-on-write
//
// Streaming without a tree:
//
//	err := parse.Into(data, consumer)          // consumer implements stream.Consumer
//	err := encode.From(producer, &buf)         // producer implements stream.Producer
//
// # Build Flags
//
// Container backings and the ASCII mode are chosen per build with Go
// build tags: list_array, list_object, btree_object select alternative
// backings (contiguous sequences are the default), and ascii_only makes
// the parser reject non-ASCII input bytes and the encoder escape all
// non-ASCII code points.
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/simon-lentz/jsontree/value]: Value tree and index protocol
//   - [github.com/simon-lentz/jsontree/parse]: JSON decoding
//   - [github.com/simon-lentz/jsontree/encode]: JSON encoding
//   - [github.com/simon-lentz/jsontree/stream]: Event streams
//   - [github.com/simon-lentz/jsontree/location]: Error positions
package jsontree
