// Package errs defines sentinel errors shared across tiledir packages.
//
// All decode failures are terminal: no partial Directory is ever returned
// alongside one of these errors. Callers match with errors.Is.
package errs

import "errors"

var (
	// ErrTruncatedDirectory indicates the directory byte buffer ended before
	// a required varint could be read in full.
	ErrTruncatedDirectory = errors.New("truncated directory data")

	// ErrInvalidEntryCount indicates the entry count prefix claims more
	// entries than the remaining bytes could possibly hold.
	ErrInvalidEntryCount = errors.New("invalid directory entry count")

	// ErrInvalidEntry indicates a structurally invalid entry, such as the
	// first entry using the contiguous-offset sentinel with no predecessor.
	ErrInvalidEntry = errors.New("invalid directory entry")

	// ErrVarintOverflow indicates a varint value exceeds the width of the
	// field it decodes into.
	ErrVarintOverflow = errors.New("varint value overflows field width")

	// ErrUnsortedEntries indicates directory entries are not strictly
	// ascending by tile ID.
	ErrUnsortedEntries = errors.New("directory entries not sorted by tile id")

	// ErrOverlappingEntries indicates a run covers tile IDs claimed by a
	// later entry.
	ErrOverlappingEntries = errors.New("directory entries cover overlapping tile ranges")
)
