// Package location provides source identity and position tracking for
// parse diagnostics.
//
// A [SourceID] names the input a document came from: either a file-backed
// source (canonicalised absolute path) or a synthetic source such as
// "<bytes>" or "<reader>". A [Position] is a 1-based line/column pair
// together with the 0-based byte offset it was derived from.
//
// [At] converts a byte offset within raw content to a Position. The parser
// calls it only when constructing an error, so position computation cost
// is confined to failure paths.
package location
