package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/tilekit/tiledir/errs"
	"github.com/tilekit/tiledir/internal/pool"
)

// UvarintEncoder encodes a column of unsigned 64-bit values as plain
// varints, one per value, with no delta step.
//
// It serves the directory columns whose values are not correlated between
// neighbors: run lengths, byte lengths, and offset codes.
//
// Internal state:
//   - temp: Reusable buffer for varint encoding (avoids allocations)
//   - buf: Output buffer accumulating encoded data
//   - count: Number of values encoded
type UvarintEncoder struct {
	temp  [binary.MaxVarintLen64]byte
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[uint64] = (*UvarintEncoder)(nil)

// NewUvarintEncoder creates a new plain varint column encoder.
//
// The encoder uses a pooled byte buffer; call Finish when the encoding
// session is complete to return the buffer to the pool.
//
// Returns:
//   - *UvarintEncoder: A new encoder instance
func NewUvarintEncoder() *UvarintEncoder {
	return &UvarintEncoder{
		buf: pool.GetColumnBuffer(),
	}
}

// Write encodes a single value as a varint.
//
// Parameters:
//   - value: Value to encode
func (e *UvarintEncoder) Write(value uint64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	n := binary.PutUvarint(e.temp[:], value)
	e.buf.MustWrite(e.temp[:n])
}

// WriteSlice encodes a slice of values with a single buffer pre-allocation.
//
// Parameters:
//   - values: Slice of values to encode
func (e *UvarintEncoder) WriteSlice(values []uint64) {
	if len(values) == 0 {
		return
	}

	e.count += len(values)

	// Run lengths and byte lengths are mostly small; 2 bytes average
	e.buf.Grow(2 * len(values))

	for _, v := range values {
		n := binary.PutUvarint(e.temp[:], v)
		e.buf.MustWrite(e.temp[:n])
	}
}

// Bytes returns the encoded byte slice containing all written values.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Finish. The caller must not modify the returned slice.
func (e *UvarintEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *UvarintEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded column.
func (e *UvarintEncoder) Size() int {
	return e.buf.Len()
}

// Reset is a no-op for the plain varint encoder, which carries no
// cross-value state. It exists to satisfy ColumnarEncoder.
func (e *UvarintEncoder) Reset() {}

// Finish finalizes the encoding session and returns the buffer to the pool.
//
// After calling Finish, the encoder behaves as if it was newly created and
// any slice previously returned by Bytes is invalid.
func (e *UvarintEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = pool.GetColumnBuffer()
	e.count = 0
}

// UvarintDecoder decodes a column produced by UvarintEncoder.
//
// The decoder is stateless and can be reused across decoding operations.
type UvarintDecoder struct{}

var _ ColumnarDecoder[uint64] = UvarintDecoder{}

// NewUvarintDecoder creates a new plain varint column decoder.
//
// Returns:
//   - UvarintDecoder: A new decoder instance (stateless, can be reused)
func NewUvarintDecoder() UvarintDecoder {
	return UvarintDecoder{}
}

// All returns an iterator that yields up to count values from data.
//
// The iterator stops early if the data is truncated or a varint is
// malformed. Use Decode when strict error reporting is required.
//
// Parameters:
//   - data: Varint-encoded byte slice from UvarintEncoder.Bytes()
//   - count: Expected number of values
func (UvarintDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		pos := 0
		for i := 0; i < count; i++ {
			v, n := binary.Uvarint(data[pos:])
			if n <= 0 {
				return
			}
			pos += n
			if !yield(v) {
				return
			}
		}
	}
}

// Decode decodes exactly count values from the head of data.
//
// Parameters:
//   - data: Varint-encoded byte slice
//   - count: Number of values to decode
//
// Returns:
//   - []uint64: Decoded values
//   - int: Number of bytes consumed from data
//   - error: errs.ErrTruncatedDirectory if data ends early,
//     errs.ErrVarintOverflow if a varint exceeds 64 bits
func (d UvarintDecoder) Decode(data []byte, count int) ([]uint64, int, error) {
	values := make([]uint64, count)
	n, err := d.DecodeInto(values, data)
	if err != nil {
		return nil, n, err
	}

	return values, n, nil
}

// DecodeInto decodes len(dst) values from the head of data into dst,
// avoiding the allocation Decode performs. Every element of dst is
// overwritten on success.
//
// Returns the number of bytes consumed and the same errors as Decode.
func (UvarintDecoder) DecodeInto(dst []uint64, data []byte) (int, error) {
	pos := 0
	for i := range dst {
		v, n := binary.Uvarint(data[pos:])
		if n == 0 {
			return pos, errs.ErrTruncatedDirectory
		}
		if n < 0 {
			return pos, errs.ErrVarintOverflow
		}
		pos += n
		dst[i] = v
	}

	return pos, nil
}
