// Package lex holds the shared lexical tables for the JSON parser and
// encoder: the 256-entry byte classification table the parser dispatches
// on, hex digit values for \uXXXX escapes, single-character escape
// decoding, and the encoder's escape-needed table.
//
// All tables are initialised once at package load and never mutated.
// The ascii_only build flag is surfaced here as [ASCIIOnly] so that the
// parser and encoder agree on a single source of truth.
package lex
