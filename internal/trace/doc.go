// Package trace provides nil-safe logging helpers for the codec's
// optional *slog.Logger plumbing.
//
// Every entry point in this module treats its logger as optional: a nil
// logger disables logging entirely. The helpers here centralise the nil
// and level checks so call sites stay single-line, and [Begin]/[Op.End]
// give operations consistent start/end spans with duration measurement.
//
// Operation names follow the convention jsontree.<package>.<operation>,
// for example jsontree.parse.file or jsontree.encode.from.
package trace
