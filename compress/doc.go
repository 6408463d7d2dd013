// Package compress provides the compression codecs applied to serialized
// directory bytes before they are stored in an archive.
//
// Directory payloads are small (a few KB to a few hundred KB), highly
// repetitive varint streams, so every codec here is tuned for many short
// buffers rather than long streams: encoders and block compressors are
// pooled, and whole-buffer APIs are preferred over streaming ones.
//
// Available codecs, selected by format.CompressionType:
//   - None: pass-through, for already-compressed or tiny directories
//   - Gzip: the interoperable default for archives consumed over HTTP
//   - Zstd: best ratio; gozstd under cgo, klauspost/compress otherwise
//   - S2: fastest, for write-heavy conversion pipelines
//   - LZ4: fast block compression with modest ratio
//
// Tile payload compression is out of scope; this package only ever sees
// directory bytes.
package compress
