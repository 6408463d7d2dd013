// Package encoding provides the low-level columnar varint encoders and
// decoders behind tiledir's directory wire format.
//
// A serialized directory is laid out column by column rather than entry by
// entry: all tile-id deltas, then all run lengths, then all lengths, then
// all offset codes. Grouping values with similar statistical distributions
// maximizes the benefit of delta coding and of the variable-length integer
// encoding. This package supplies one encoder/decoder pair per column
// shape:
//
//   - TileIDDeltaEncoder / TileIDDeltaDecoder for the monotonically
//     increasing tile-id column (delta + varint, no zigzag)
//   - UvarintEncoder / UvarintDecoder for the remaining columns
//     (plain varint)
//
// Most users should use the directory package instead, which composes
// these encoders into the full five-pass directory codec. Use this package
// directly only when building custom column layouts that share tiledir's
// varint conventions.
package encoding
