package directory

import (
	"encoding/binary"
	"math"

	"github.com/tilekit/tiledir/encoding"
	"github.com/tilekit/tiledir/errs"
	"github.com/tilekit/tiledir/internal/pool"
)

// Each entry contributes at least one byte to each of the four value
// columns, so a buffer holding n entries is at least 4n bytes past the
// count prefix.
const minEntryWireSize = 4

// Decode deserializes a directory from an already-decompressed byte buffer.
//
// The buffer is read in five passes: entry count, tile-id deltas, run
// lengths, lengths, and offset codes. Tile-id deltas accumulate from an
// implicit zero. An offset code of zero marks the entry as byte-contiguous
// with the previous one; a nonzero code v stores offset v-1, reserving
// zero for the sentinel while keeping an explicit offset of zero
// encodable.
//
// Decode performs no cross-pass consistency or sortedness checks beyond
// the structural ones below; call Validate on the result when the source
// bytes are untrusted.
//
// Returns:
//   - *Directory: The decoded directory
//   - error: errs.ErrTruncatedDirectory on a short buffer,
//     errs.ErrInvalidEntryCount when the count prefix exceeds what the
//     buffer could hold, errs.ErrVarintOverflow when a value exceeds its
//     field width, errs.ErrInvalidEntry when the first entry carries the
//     contiguous-offset sentinel
func Decode(data []byte) (*Directory, error) {
	count, n := binary.Uvarint(data)
	if n == 0 {
		return nil, errs.ErrTruncatedDirectory
	}
	if n < 0 {
		return nil, errs.ErrVarintOverflow
	}
	pos := n

	if count > uint64(len(data)-pos)/minEntryWireSize {
		return nil, errs.ErrInvalidEntryCount
	}
	numEntries := int(count)

	tileIDs, cleanupIDs := pool.GetUint64Slice(numEntries)
	defer cleanupIDs()
	runLengths, cleanupRuns := pool.GetUint64Slice(numEntries)
	defer cleanupRuns()
	lengths, cleanupLengths := pool.GetUint64Slice(numEntries)
	defer cleanupLengths()
	offsetCodes, cleanupOffsets := pool.GetUint64Slice(numEntries)
	defer cleanupOffsets()

	idDec := encoding.NewTileIDDeltaDecoder()
	valDec := encoding.NewUvarintDecoder()

	n, err := idDec.DecodeInto(tileIDs, data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	n, err = valDec.DecodeInto(runLengths, data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	n, err = valDec.DecodeInto(lengths, data[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	if _, err = valDec.DecodeInto(offsetCodes, data[pos:]); err != nil {
		return nil, err
	}

	entries := make([]DirEntry, numEntries)
	for i := range entries {
		if runLengths[i] > math.MaxUint32 || lengths[i] > math.MaxUint32 {
			return nil, errs.ErrVarintOverflow
		}

		entries[i].TileID = tileIDs[i]
		entries[i].RunLength = uint32(runLengths[i])
		entries[i].Length = uint32(lengths[i])

		switch code := offsetCodes[i]; {
		case code != 0:
			entries[i].Offset = code - 1
		case i == 0:
			// Contiguous sentinel with no previous entry
			return nil, errs.ErrInvalidEntry
		default:
			entries[i].Offset = entries[i-1].Offset + uint64(entries[i-1].Length)
		}
	}

	return &Directory{entries: entries}, nil
}
