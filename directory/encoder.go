package directory

import (
	"encoding/binary"
	"io"

	"github.com/tilekit/tiledir/encoding"
)

// WriteTo serializes the directory to w in the five-pass columnar wire
// format, the exact inverse of Decode.
//
// The entries are trusted to be sorted strictly ascending by tile id;
// WriteTo does not re-validate. An entry whose offset equals the previous
// entry's offset plus the previous entry's length is emitted with the
// contiguous sentinel code zero; any other offset v is emitted as v+1.
// Contiguity is judged against the previous entry's own stored offset and
// length, not its logical run end.
//
// The only error source is the sink; a structurally valid Directory never
// fails to encode.
//
// WriteTo implements io.WriterTo.
func (d *Directory) WriteTo(w io.Writer) (int64, error) {
	idEnc := encoding.NewTileIDDeltaEncoder()
	defer idEnc.Finish()
	runEnc := encoding.NewUvarintEncoder()
	defer runEnc.Finish()
	lenEnc := encoding.NewUvarintEncoder()
	defer lenEnc.Finish()
	offEnc := encoding.NewUvarintEncoder()
	defer offEnc.Finish()

	var prevOffset uint64
	var prevLength uint32
	for i, entry := range d.entries {
		idEnc.Write(entry.TileID)
		runEnc.Write(uint64(entry.RunLength))
		lenEnc.Write(uint64(entry.Length))

		code := entry.Offset + 1
		if i > 0 && entry.Offset == prevOffset+uint64(prevLength) {
			code = 0
		}
		offEnc.Write(code)

		prevOffset = entry.Offset
		prevLength = entry.Length
	}

	var written int64

	var temp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(temp[:], uint64(len(d.entries)))
	wn, err := w.Write(temp[:n])
	written += int64(wn)
	if err != nil {
		return written, err
	}

	for _, column := range [][]byte{idEnc.Bytes(), runEnc.Bytes(), lenEnc.Bytes(), offEnc.Bytes()} {
		wn, err = w.Write(column)
		written += int64(wn)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
