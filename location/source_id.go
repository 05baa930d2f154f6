package location

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// SourceID identifies the origin of parsed content.
//
// A SourceID represents either a file-backed source (created via
// [SourceIDFromPath]) or a synthetic source (created via [NewSourceID]),
// such as "<bytes>", "<reader>", or "inline:fixture".
//
// File-backed identifiers are canonicalised: absolute, cleaned,
// NFC-normalised, and forward-slashed, so that the same file referenced
// through different spellings yields an equal SourceID.
//
// SourceID is a comparable value type; the zero value is invalid and
// reports IsZero.
type SourceID struct {
	path      string
	synthetic string
}

// NewSourceID creates a SourceID for synthetic (non-file) sources.
//
// Conventional identifiers use a bracketed or scheme-prefixed form
// ("<bytes>", "inline:test") so they cannot collide with canonical
// file paths. An empty identifier yields the zero SourceID.
func NewSourceID(identifier string) SourceID {
	return SourceID{synthetic: identifier}
}

// SourceIDFromPath canonicalises path and creates a file-backed SourceID.
//
// The path is made absolute, cleaned, NFC-normalised, and converted to
// forward slashes. Symlinks are not resolved; two spellings that differ
// only through symlinks produce distinct SourceIDs.
func SourceIDFromPath(path string) (SourceID, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SourceID{}, fmt.Errorf("create source ID from path %q: %w", path, err)
	}
	canonical := filepath.ToSlash(filepath.Clean(norm.NFC.String(abs)))
	return SourceID{path: canonical}, nil
}

// String returns the source identifier: the canonical path for
// file-backed sources, the synthetic identifier otherwise.
func (s SourceID) String() string {
	if s.synthetic != "" {
		return s.synthetic
	}
	return s.path
}

// IsZero reports whether this is the zero-value SourceID.
func (s SourceID) IsZero() bool {
	return s.path == "" && s.synthetic == ""
}

// IsFilePath reports whether this SourceID names a file-backed source.
func (s SourceID) IsFilePath() bool {
	return s.path != ""
}
