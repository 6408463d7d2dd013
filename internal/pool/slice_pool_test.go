package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint64Slice(t *testing.T) {
	s, cleanup := GetUint64Slice(100)
	require.Len(t, s, 100)

	for i := range s {
		s[i] = uint64(i)
	}
	cleanup()

	// A recycled slice comes back at the requested length with capacity
	// retained from the previous use.
	s2, cleanup2 := GetUint64Slice(10)
	defer cleanup2()
	require.Len(t, s2, 10)
	require.GreaterOrEqual(t, cap(s2), 10)
}

func TestGetUint64Slice_GrowsBeyondPooled(t *testing.T) {
	s, cleanup := GetUint64Slice(4)
	cleanup()

	s2, cleanup2 := GetUint64Slice(cap(s) + 1000)
	defer cleanup2()
	require.Len(t, s2, cap(s)+1000)
}
