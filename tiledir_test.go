package tiledir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilekit/tiledir"
	"github.com/tilekit/tiledir/cache"
	"github.com/tilekit/tiledir/directory"
	"github.com/tilekit/tiledir/format"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	dir := directory.New(3)
	dir.Append(directory.DirEntry{TileID: 0, Offset: 0, Length: 100, RunLength: 1})
	dir.Append(directory.DirEntry{TileID: 1, Offset: 100, Length: 50, RunLength: 4})
	dir.Append(directory.DirEntry{TileID: 9, Offset: 150, Length: 30, RunLength: 1})

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
	} {
		data, err := tiledir.Serialize(dir, ct)
		require.NoError(t, err)

		decoded, err := tiledir.Deserialize(data, ct)
		require.NoError(t, err)
		require.Equal(t, dir.Entries(), decoded.Entries())
	}
}

func TestSerialize_UnsupportedCompression(t *testing.T) {
	_, err := tiledir.Serialize(directory.New(0), format.CompressionType(0xee))
	require.Error(t, err)

	_, err = tiledir.Deserialize([]byte{0}, format.CompressionType(0xee))
	require.Error(t, err)
}

func TestDeserialize_CorruptData(t *testing.T) {
	_, err := tiledir.Deserialize([]byte("not gzip at all"), format.CompressionGzip)
	require.Error(t, err)
}

// TestHierarchicalLookup exercises the root→leaf usage pattern: the root
// directory's leaf pointer addresses a serialized child directory, and the
// caller descends by deserializing the child and retrying the lookup.
func TestHierarchicalLookup(t *testing.T) {
	// Leaf directory covering tiles 1000..1004
	leaf := directory.New(2)
	leaf.Append(directory.DirEntry{TileID: 1000, Offset: 0, Length: 400, RunLength: 3})
	leaf.Append(directory.DirEntry{TileID: 1003, Offset: 400, Length: 200, RunLength: 2})

	leafBytes, err := tiledir.Serialize(leaf, format.CompressionGzip)
	require.NoError(t, err)

	// Root: one direct entry, then a leaf pointer at tile 1000 addressing
	// the child directory's bytes in a notional leaf section.
	root := directory.New(2)
	root.Append(directory.DirEntry{TileID: 0, Offset: 0, Length: 128, RunLength: 1})
	root.Append(directory.DirEntry{TileID: 1000, Offset: 0, Length: uint32(len(leafBytes)), RunLength: 0})

	rootBytes, err := tiledir.Serialize(root, format.CompressionGzip)
	require.NoError(t, err)

	// Resolve tile 1004 starting from the root
	rootDir, err := tiledir.Deserialize(rootBytes, format.CompressionGzip)
	require.NoError(t, err)

	res, ok := rootDir.Locate(1004)
	require.True(t, ok)
	ptr, isLeaf := res.(directory.LeafPointer)
	require.True(t, isLeaf)
	require.Equal(t, uint32(len(leafBytes)), ptr.Length)

	// The pointer addresses the child's bytes; descend and retry
	leafDir, err := tiledir.Deserialize(leafBytes, format.CompressionGzip)
	require.NoError(t, err)

	entry, ok := leafDir.FindTileID(1004)
	require.True(t, ok)
	require.Equal(t, uint64(1003), entry.TileID)
	require.Equal(t, uint64(400), entry.Offset)
	require.False(t, entry.IsLeaf())
}

// TestCachedHierarchicalLookup wires the directory cache into the descent:
// the second resolution of a tile under the same leaf skips the decode.
func TestCachedHierarchicalLookup(t *testing.T) {
	leaf := directory.New(1)
	leaf.Append(directory.DirEntry{TileID: 500, Offset: 0, Length: 64, RunLength: 10})

	leafBytes, err := tiledir.Serialize(leaf, format.CompressionNone)
	require.NoError(t, err)

	c, err := cache.New(8, 1<<20)
	require.NoError(t, err)

	resolve := func(offset uint64) *directory.Directory {
		key := cache.NewKey("planet.archive", offset)
		if dir, ok := c.Get(key); ok {
			return dir
		}
		dir, err := tiledir.Deserialize(leafBytes, format.CompressionNone)
		require.NoError(t, err)
		c.Put(key, dir)

		return dir
	}

	first := resolve(4096)
	second := resolve(4096)
	require.Same(t, first, second)

	entry, ok := second.FindTileID(505)
	require.True(t, ok)
	require.Equal(t, uint64(500), entry.TileID)
}
