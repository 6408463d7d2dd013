// Package tiledir implements the directory index of a tiled-data archive:
// a compact, binary, delta-and-varint-compressed table mapping
// monotonically increasing tile identifiers to byte ranges within an
// archive, or to leaf directories when the tile set outgrows a single
// flat index.
//
// # Core Features
//
//   - Columnar five-pass wire format (count, tile-id deltas, run lengths,
//     lengths, offset codes), every value a base-128 varint
//   - Run-length entries sharing one byte range across consecutive tiles
//   - Leaf pointers deferring precision to a nested directory
//   - Binary-search lookup with exact-hit / leaf-deferral / run-containment
//     tie-break
//   - Pluggable compression of serialized directories (Gzip, Zstd, S2, LZ4)
//   - Byte-budgeted LRU caching of decoded directories
//
// # Basic Usage
//
// Building and serializing a directory:
//
//	dir := directory.New(3)
//	dir.Append(directory.DirEntry{TileID: 0, Offset: 0, Length: 100, RunLength: 1})
//	dir.Append(directory.DirEntry{TileID: 1, Offset: 100, Length: 50, RunLength: 4})
//	data, _ := tiledir.Serialize(dir, format.CompressionGzip)
//
// Loading and looking up:
//
//	dir, _ := tiledir.Deserialize(data, format.CompressionGzip)
//	entry, ok := dir.FindTileID(3)
//	if ok && entry.IsLeaf() {
//	    // entry addresses a nested directory: fetch its bytes,
//	    // Deserialize again and retry the lookup there
//	}
//
// Fetching archive segments, decompressing tile payloads and converting
// zoom/x/y coordinates to tile identifiers are collaborators' concerns;
// this module only ever sees linear tile identifiers and byte buffers.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// directory and compress packages. For fine-grained control, such as
// streaming a directory into an io.Writer, use those packages directly.
package tiledir

import (
	"bytes"

	"github.com/tilekit/tiledir/compress"
	"github.com/tilekit/tiledir/directory"
	"github.com/tilekit/tiledir/format"
)

// Decode deserializes a directory from an already-decompressed byte
// buffer.
//
// Use Deserialize when the buffer still carries its storage compression.
func Decode(data []byte) (*directory.Directory, error) {
	return directory.Decode(data)
}

// Deserialize decompresses a stored directory buffer with the given codec
// and decodes it.
//
// Parameters:
//   - data: Compressed directory bytes as stored in the archive
//   - compression: Codec the archive's container header declares
//
// Returns:
//   - *directory.Directory: The decoded directory
//   - error: Unsupported compression, corrupt compressed data, or any
//     directory decode error
func Deserialize(data []byte, compression format.CompressionType) (*directory.Directory, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return directory.Decode(raw)
}

// Serialize encodes a directory and compresses the result with the given
// codec, producing the bytes to store in the archive.
//
// The directory's entries are trusted to be sorted strictly ascending by
// tile id; call Validate first when in doubt.
//
// Parameters:
//   - dir: Directory to serialize
//   - compression: Codec to apply to the encoded bytes
//
// Returns:
//   - []byte: Compressed serialized directory
//   - error: Unsupported compression or compression failure
func Serialize(dir *directory.Directory, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := dir.WriteTo(&buf); err != nil {
		return nil, err
	}

	return codec.Compress(buf.Bytes())
}
