//go:build !ascii_only

package lex

// ASCIIOnly reports whether the ascii_only build flag is active. In the
// default build the parser accepts arbitrary valid UTF-8 and the encoder
// emits non-ASCII code points literally.
const ASCIIOnly = false
