package pool

import "sync"

// uint64SlicePool reuses the scratch columns the directory decoder fills
// before assembling entries, so a decode of n entries costs one entry
// allocation instead of five.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice has exactly the requested length; its contents are
// unspecified and must be overwritten before use. The caller must call the
// returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer)
//     to return the slice to the pool
//
// Example:
//
//	offsets, cleanup := pool.GetUint64Slice(n)
//	defer cleanup()
//	// Fill and consume offsets before cleanup runs...
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
