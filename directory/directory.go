// Package directory implements the index of a tiled-data archive: an
// ordered table mapping monotonically increasing tile identifiers to byte
// ranges, or to pointers toward leaf directories when the tile set is too
// large for a single flat index.
//
// A Directory is a write-once, read-many value. It is built either by
// decoding a previously serialized byte buffer (see Decode) or by
// appending entries in ascending tile-id order during archive writing,
// then serialized once with WriteTo. A decoded Directory never mutates and
// is safe to share across concurrent lookups.
//
// The wire format is columnar: entry count, then all tile-id deltas, then
// all run lengths, then all lengths, then all offset codes, every value a
// base-128 varint. See the encoding package for the column codecs.
package directory

import (
	"cmp"
	"slices"

	"github.com/tilekit/tiledir/errs"
)

// Directory is an ordered collection of DirEntry, sorted strictly
// ascending by tile id with non-overlapping runs.
//
// The ordering invariant is an input precondition for WriteTo and an
// implied guarantee of a correctly formed Decode; neither re-validates it.
// Use Validate to check explicitly when handling untrusted input.
type Directory struct {
	entries []DirEntry
}

// New creates an empty Directory with room for capacity entries.
func New(capacity int) *Directory {
	return &Directory{
		entries: make([]DirEntry, 0, capacity),
	}
}

// FromEntries creates a Directory that takes ownership of entries.
//
// The entries must already be sorted strictly ascending by tile id with
// non-overlapping runs; FromEntries does not verify this.
func FromEntries(entries []DirEntry) *Directory {
	return &Directory{entries: entries}
}

// Append adds an entry to the directory during the build phase.
//
// Entries must be appended in ascending tile-id order. The build phase is
// single-owner; Append must not race with other calls on the same
// Directory.
func (d *Directory) Append(entry DirEntry) {
	d.entries = append(d.entries, entry)
}

// Entries returns the directory's entries in tile-id order.
//
// The returned slice shares the directory's backing storage and must not
// be modified.
func (d *Directory) Entries() []DirEntry {
	return d.entries
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// FindTileID returns the entry covering the requested tile id.
//
// The lookup binary-searches the ascending tile-id sequence:
//   - An exact match is always a hit.
//   - Otherwise the candidate immediately before the insertion point is
//     examined. A leaf pointer matches regardless of distance; the caller
//     is expected to descend into the child directory and retry there. A
//     non-leaf candidate matches only when the requested id falls strictly
//     within its run.
//   - Anything else is a miss: the id precedes all entries or falls in a
//     gap between covered ranges.
//
// The second return value reports whether a covering entry was found.
func (d *Directory) FindTileID(tileID uint64) (DirEntry, bool) {
	idx, found := slices.BinarySearchFunc(d.entries, tileID, func(e DirEntry, id uint64) int {
		return cmp.Compare(e.TileID, id)
	})
	if found {
		return d.entries[idx], true
	}
	if idx == 0 {
		return DirEntry{}, false
	}

	prev := d.entries[idx-1]
	if prev.IsLeaf() || tileID-prev.TileID < uint64(prev.RunLength) {
		return prev, true
	}

	return DirEntry{}, false
}

// Locate performs the same lookup as FindTileID but returns a tagged
// Result, letting callers switch on Data versus LeafPointer instead of
// testing RunLength.
func (d *Directory) Locate(tileID uint64) (Result, bool) {
	entry, ok := d.FindTileID(tileID)
	if !ok {
		return nil, false
	}
	if entry.IsLeaf() {
		return LeafPointer{Offset: entry.Offset, Length: entry.Length}, true
	}

	return Data{Offset: entry.Offset, Length: entry.Length, RunLength: entry.RunLength}, true
}

// ApproxByteSize returns an estimate of the directory's in-memory
// footprint for use by cache eviction.
//
// The estimate reflects allocated capacity rather than live length,
// trading slight overestimation for O(1) cost with no traversal.
func (d *Directory) ApproxByteSize() int {
	return cap(d.entries) * dirEntrySize
}

// Validate checks the ordering invariants the codec and lookup logic
// otherwise trust: tile ids strictly ascending, and no run covering a
// later entry's tile id.
//
// Decode does not call Validate; decoding untrusted archives should.
// Returns errs.ErrUnsortedEntries or errs.ErrOverlappingEntries.
func (d *Directory) Validate() error {
	for i := 1; i < len(d.entries); i++ {
		prev, cur := d.entries[i-1], d.entries[i]
		if cur.TileID <= prev.TileID {
			return errs.ErrUnsortedEntries
		}
		if !prev.IsLeaf() && cur.TileID-prev.TileID < uint64(prev.RunLength) {
			return errs.ErrOverlappingEntries
		}
	}

	return nil
}
