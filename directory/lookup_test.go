package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioDirectory mirrors the canonical lookup scenario: a run entry, a
// leaf pointer, and a second run after a gap.
func scenarioDirectory() *Directory {
	return FromEntries([]DirEntry{
		{TileID: 0, RunLength: 1, Length: 100, Offset: 0},
		{TileID: 1, RunLength: 0, Length: 50, Offset: 100}, // leaf
		{TileID: 5, RunLength: 3, Length: 30, Offset: 150},
	})
}

func TestFindTileID_Scenario(t *testing.T) {
	dir := scenarioDirectory()

	e, ok := dir.FindTileID(0)
	require.True(t, ok)
	require.Equal(t, uint64(0), e.TileID)

	e, ok = dir.FindTileID(1)
	require.True(t, ok)
	require.Equal(t, uint64(1), e.TileID)
	require.True(t, e.IsLeaf())

	// Leaf deferral: tile 2 is not covered by any run, but the preceding
	// leaf pointer matches regardless of distance.
	e, ok = dir.FindTileID(2)
	require.True(t, ok)
	require.Equal(t, uint64(1), e.TileID)

	e, ok = dir.FindTileID(5)
	require.True(t, ok)
	require.Equal(t, uint64(5), e.TileID)

	// Within the run: 7-5 = 2 < 3
	e, ok = dir.FindTileID(7)
	require.True(t, ok)
	require.Equal(t, uint64(5), e.TileID)

	// Past the run end: 8-5 = 3, not < 3
	_, ok = dir.FindTileID(8)
	require.False(t, ok)
}

func TestFindTileID_ExactMatchEveryEntry(t *testing.T) {
	dir := scenarioDirectory()
	for _, want := range dir.Entries() {
		got, ok := dir.FindTileID(want.TileID)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestFindTileID_RunCoverage(t *testing.T) {
	dir := FromEntries([]DirEntry{
		{TileID: 10, RunLength: 4, Length: 8, Offset: 0},
		{TileID: 20, RunLength: 1, Length: 8, Offset: 8},
	})

	for k := uint64(0); k < 4; k++ {
		e, ok := dir.FindTileID(10 + k)
		require.True(t, ok, "tile %d should fall within the run", 10+k)
		require.Equal(t, uint64(10), e.TileID)
	}

	// First tile past the run falls into the gap before tile 20
	_, ok := dir.FindTileID(14)
	require.False(t, ok)
}

func TestFindTileID_LeafDeferral(t *testing.T) {
	dir := FromEntries([]DirEntry{
		{TileID: 100, RunLength: 0, Length: 64, Offset: 0},
		{TileID: 100_000, RunLength: 1, Length: 8, Offset: 64},
	})

	// Every id between the leaf and the next entry defers to the leaf,
	// no matter how far away it is.
	for _, q := range []uint64{100, 101, 5000, 99_999} {
		e, ok := dir.FindTileID(q)
		require.True(t, ok)
		require.Equal(t, uint64(100), e.TileID)
		require.True(t, e.IsLeaf())
	}
}

func TestFindTileID_NoCoverage(t *testing.T) {
	dir := FromEntries([]DirEntry{
		{TileID: 10, RunLength: 2, Length: 8, Offset: 0},
	})

	// Before the first entry
	_, ok := dir.FindTileID(9)
	require.False(t, ok)

	// After the run end
	_, ok = dir.FindTileID(12)
	require.False(t, ok)

	// Empty directory never matches
	_, ok = New(0).FindTileID(0)
	require.False(t, ok)
}

func TestLocate_TaggedResults(t *testing.T) {
	dir := scenarioDirectory()

	res, ok := dir.Locate(0)
	require.True(t, ok)
	require.Equal(t, Data{Offset: 0, Length: 100, RunLength: 1}, res)

	res, ok = dir.Locate(2)
	require.True(t, ok)
	require.Equal(t, LeafPointer{Offset: 100, Length: 50}, res)

	res, ok = dir.Locate(8)
	require.False(t, ok)
	require.Nil(t, res)
}
