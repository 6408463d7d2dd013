package directory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilekit/tiledir/errs"
)

func TestDirectory_AppendAndEntries(t *testing.T) {
	dir := New(4)
	require.Equal(t, 0, dir.Len())

	dir.Append(DirEntry{TileID: 0, Offset: 0, Length: 100, RunLength: 1})
	dir.Append(DirEntry{TileID: 1, Offset: 100, Length: 50, RunLength: 2})

	require.Equal(t, 2, dir.Len())
	entries := dir.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, uint64(0), entries[0].TileID)
	require.Equal(t, uint64(1), entries[1].TileID)
}

func TestFromEntries_TakesOwnership(t *testing.T) {
	entries := []DirEntry{
		{TileID: 3, Offset: 10, Length: 5, RunLength: 1},
		{TileID: 8, Offset: 15, Length: 7, RunLength: 1},
	}
	dir := FromEntries(entries)
	require.Equal(t, 2, dir.Len())
	require.Equal(t, entries, dir.Entries())
}

func TestDirEntry_IsLeaf(t *testing.T) {
	require.True(t, DirEntry{RunLength: 0}.IsLeaf())
	require.False(t, DirEntry{RunLength: 1}.IsLeaf())
}

func TestDirectory_ApproxByteSize(t *testing.T) {
	dir := New(128)
	require.Equal(t, 128*dirEntrySize, dir.ApproxByteSize())

	// The estimate reflects capacity, not live length
	dir.Append(DirEntry{TileID: 1, Length: 10, RunLength: 1})
	require.Equal(t, 128*dirEntrySize, dir.ApproxByteSize())

	require.Equal(t, 0, New(0).ApproxByteSize())
}

func TestDirectory_Validate(t *testing.T) {
	valid := FromEntries([]DirEntry{
		{TileID: 0, Offset: 0, Length: 10, RunLength: 3},
		{TileID: 3, Offset: 10, Length: 10, RunLength: 0}, // leaf
		{TileID: 9, Offset: 20, Length: 10, RunLength: 1},
	})
	require.NoError(t, valid.Validate())

	require.NoError(t, New(0).Validate())

	unsorted := FromEntries([]DirEntry{
		{TileID: 5, Length: 1, RunLength: 1},
		{TileID: 5, Length: 1, RunLength: 1},
	})
	require.ErrorIs(t, unsorted.Validate(), errs.ErrUnsortedEntries)

	// Run of length 4 starting at tile 0 covers tiles 0..3; the next entry
	// at tile 2 overlaps it.
	overlapping := FromEntries([]DirEntry{
		{TileID: 0, Length: 1, RunLength: 4},
		{TileID: 2, Length: 1, RunLength: 1},
	})
	require.ErrorIs(t, overlapping.Validate(), errs.ErrOverlappingEntries)

	// A leaf pointer covers everything up to the next entry and never
	// counts as overlapping.
	leafGap := FromEntries([]DirEntry{
		{TileID: 0, Length: 1, RunLength: 0},
		{TileID: 1, Length: 1, RunLength: 1},
	})
	require.NoError(t, leafGap.Validate())
}
