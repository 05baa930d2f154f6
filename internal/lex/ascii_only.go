//go:build ascii_only

package lex

// ASCIIOnly reports whether the ascii_only build flag is active. With the
// flag set the parser rejects any byte >= 0x80 and any decoded code point
// above 0x7F, and the encoder escapes all non-ASCII code points as \uXXXX.
const ASCIIOnly = true
