package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/tilekit/tiledir/errs"
	"github.com/tilekit/tiledir/internal/pool"
)

// TileIDDeltaEncoder encodes a monotonically increasing tile-id column as
// varint-encoded deltas.
//
// Each value is stored as the difference from the previous value, with the
// first delta taken from an implicit zero. Because tile ids are strictly
// ascending by the directory's sortedness invariant, deltas are always
// non-negative and no zigzag step is needed.
//
// Compression characteristics:
//   - Densely packed pyramids (consecutive tile ids): 1 byte per id
//   - Sparse coverage: bytes proportional to the magnitude of the gap
//   - Worst case: 10 bytes per id (full 64-bit jump)
//
// Internal state:
//   - prev: Previous tile id for delta calculation
//   - temp: Reusable buffer for varint encoding (avoids allocations)
//   - buf: Output buffer accumulating encoded data
//   - count: Number of tile ids encoded
type TileIDDeltaEncoder struct {
	prev  uint64
	temp  [binary.MaxVarintLen64]byte
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[uint64] = (*TileIDDeltaEncoder)(nil)

// NewTileIDDeltaEncoder creates a new delta-compressed tile-id encoder.
//
// The encoder uses a pooled byte buffer with amortized growth strategy.
// Call Finish when the encoding session is complete to return the buffer
// to the pool.
//
// Returns:
//   - *TileIDDeltaEncoder: A new encoder instance ready for tile-id encoding
func NewTileIDDeltaEncoder() *TileIDDeltaEncoder {
	return &TileIDDeltaEncoder{
		buf: pool.GetColumnBuffer(),
	}
}

// Write encodes a single tile id as a varint delta from the previous id.
//
// Writing an id smaller than the previous one wraps the unsigned delta and
// produces a column that will not round-trip; the caller is responsible for
// upholding the ascending-id invariant.
//
// Parameters:
//   - tileID: Tile identifier, not smaller than the previously written one
func (e *TileIDDeltaEncoder) Write(tileID uint64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	n := binary.PutUvarint(e.temp[:], tileID-e.prev)
	e.buf.MustWrite(e.temp[:n])
	e.prev = tileID
}

// WriteSlice encodes a slice of ascending tile ids with a single buffer
// pre-allocation.
//
// Parameters:
//   - tileIDs: Slice of tile identifiers in ascending order
func (e *TileIDDeltaEncoder) WriteSlice(tileIDs []uint64) {
	if len(tileIDs) == 0 {
		return
	}

	e.count += len(tileIDs)

	// Dense pyramids encode to 1 byte per id; reserve 2 to cover sparse runs
	e.buf.Grow(2 * len(tileIDs))

	prev := e.prev
	for _, id := range tileIDs {
		n := binary.PutUvarint(e.temp[:], id-prev)
		e.buf.MustWrite(e.temp[:n])
		prev = id
	}
	e.prev = prev
}

// Bytes returns the delta-compressed encoded byte slice containing all written tile ids.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Finish. The caller must not modify the returned slice as it references
// the internal buffer.
//
// Returns:
//   - []byte: Encoded byte slice (empty if no tile ids written)
func (e *TileIDDeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded tile ids.
func (e *TileIDDeltaEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded column.
func (e *TileIDDeltaEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the delta state, allowing a new ascending sequence to be
// appended to the same column buffer.
//
// The length, size and accumulated bytes remain unchanged.
func (e *TileIDDeltaEncoder) Reset() {
	e.prev = 0
}

// Finish finalizes the encoding session and returns the buffer to the pool.
//
// After calling Finish, the encoder behaves as if it was newly created and
// any slice previously returned by Bytes is invalid.
func (e *TileIDDeltaEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = pool.GetColumnBuffer()
	e.prev = 0
	e.count = 0
}

// TileIDDeltaDecoder decodes a tile-id column produced by TileIDDeltaEncoder.
//
// The decoder is stateless and can be reused across decoding operations.
// It accumulates varint deltas back into absolute tile ids, starting from
// an implicit zero.
type TileIDDeltaDecoder struct{}

var _ ColumnarDecoder[uint64] = TileIDDeltaDecoder{}

// NewTileIDDeltaDecoder creates a new delta tile-id decoder.
//
// Returns:
//   - TileIDDeltaDecoder: A new decoder instance (stateless, can be reused)
func NewTileIDDeltaDecoder() TileIDDeltaDecoder {
	return TileIDDeltaDecoder{}
}

// All returns an iterator that yields up to count absolute tile ids from data.
//
// The iterator stops early if the data is truncated or a varint is
// malformed. Use Decode when strict error reporting is required.
//
// Parameters:
//   - data: Delta-encoded byte slice from TileIDDeltaEncoder.Bytes()
//   - count: Expected number of tile ids
func (TileIDDeltaDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		var id uint64
		pos := 0
		for i := 0; i < count; i++ {
			delta, n := binary.Uvarint(data[pos:])
			if n <= 0 {
				return
			}
			pos += n
			id += delta
			if !yield(id) {
				return
			}
		}
	}
}

// Decode decodes exactly count absolute tile ids from the head of data.
//
// Parameters:
//   - data: Delta-encoded byte slice
//   - count: Number of tile ids to decode
//
// Returns:
//   - []uint64: Decoded absolute tile ids
//   - int: Number of bytes consumed from data
//   - error: errs.ErrTruncatedDirectory if data ends early,
//     errs.ErrVarintOverflow if a varint exceeds 64 bits
func (d TileIDDeltaDecoder) Decode(data []byte, count int) ([]uint64, int, error) {
	ids := make([]uint64, count)
	n, err := d.DecodeInto(ids, data)
	if err != nil {
		return nil, n, err
	}

	return ids, n, nil
}

// DecodeInto decodes len(dst) absolute tile ids from the head of data into
// dst, avoiding the allocation Decode performs. Every element of dst is
// overwritten on success.
//
// Returns the number of bytes consumed and the same errors as Decode.
func (TileIDDeltaDecoder) DecodeInto(dst []uint64, data []byte) (int, error) {
	var id uint64
	pos := 0
	for i := range dst {
		delta, n := binary.Uvarint(data[pos:])
		if n == 0 {
			return pos, errs.ErrTruncatedDirectory
		}
		if n < 0 {
			return pos, errs.ErrVarintOverflow
		}
		pos += n
		id += delta
		dst[i] = id
	}

	return pos, nil
}
