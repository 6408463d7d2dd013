package encoding

import "iter"

// ColumnarEncoder is the common contract of tiledir's per-column encoders.
//
// Encoders accumulate varint-encoded values into an internal pooled buffer.
// The typical session is Write/WriteSlice, then Bytes to retrieve the
// encoded column, then Finish to return the buffer to the pool.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded column.
	// It represents the number of bytes that were written to the internal buffer.
	Size() int

	// Reset clears the encoder's delta state but keeps the accumulated data
	// in the internal buffer, allowing a new value sequence to be appended
	// to the same column buffer.
	Reset()

	// Finish finalizes the encoding session and returns buffer resources to the pool.
	//
	// After calling Finish, the encoder behaves as if newly created; data
	// retrieved from Bytes before the call is no longer valid. Use defer to
	// ensure the buffer is returned even on error paths:
	//
	//	enc := NewUvarintEncoder()
	//	defer enc.Finish()
	Finish()

	// Write encodes a single value.
	//
	// This method is optimized for appending a single value.
	// For bulk writes, use WriteSlice for better performance.
	Write(value T)

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use Write
	// for better performance.
	WriteSlice(values []T)
}

// ColumnarDecoder is the common contract of tiledir's per-column decoders.
//
// Decoders are stateless and can be shared freely. Because the five column
// sections of a serialized directory are concatenated with no explicit
// boundaries, Decode reports the number of bytes consumed so callers can
// chain passes over a single buffer.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator that yields up to count decoded values from data.
	//
	// The iterator stops early on a truncated or malformed varint; callers
	// needing strict error reporting should use Decode instead.
	All(data []byte, count int) iter.Seq[T]

	// Decode decodes exactly count values from the head of data.
	//
	// Returns the decoded values, the number of bytes consumed, and an
	// error if the data is truncated or a varint overflows the column's
	// value width.
	Decode(data []byte, count int) ([]T, int, error)
}
