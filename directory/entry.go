package directory

// DirEntry records one covered range of tile identifiers in a directory.
//
// An entry either addresses tile payload bytes directly, or points at a
// child directory ("leaf pointer") when RunLength is zero. A positive
// RunLength r means the entry also covers tile ids TileID+1 .. TileID+r-1
// with the same offset and length, a common occurrence in raster pyramids
// over uniform regions such as open ocean.
//
// DirEntry performs no validation of its own; the directory codec and
// lookup logic enforce the ordering invariants.
type DirEntry struct {
	// TileID is the first tile identifier covered by this entry.
	TileID uint64

	// Offset is the byte offset within the archive's tile-data section
	// where this entry's payload begins. For a leaf pointer it addresses
	// the child directory's bytes instead.
	Offset uint64

	// Length is the byte length of this entry's payload.
	Length uint32

	// RunLength is the number of consecutive tile ids this entry covers.
	// Zero marks the entry as a leaf pointer.
	RunLength uint32
}

// IsLeaf reports whether the entry points at a child directory rather than
// tile payload bytes.
func (e DirEntry) IsLeaf() bool {
	return e.RunLength == 0
}

// dirEntrySize is the in-memory footprint of one DirEntry: two uint64
// fields plus two uint32 fields, with no padding on 64-bit platforms.
const dirEntrySize = 24

// Result is the tagged outcome of a Locate call, either Data or
// LeafPointer. Callers switch on the concrete type instead of checking
// RunLength sentinels at every call site.
type Result interface {
	isResult()
}

// Data addresses tile payload bytes within the archive's tile-data section.
type Data struct {
	Offset    uint64
	Length    uint32
	RunLength uint32
}

// LeafPointer addresses a child directory's serialized bytes. The caller
// is expected to decode the child and retry the lookup there.
type LeafPointer struct {
	Offset uint64
	Length uint32
}

func (Data) isResult()        {}
func (LeafPointer) isResult() {}
