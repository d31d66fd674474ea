// Package geohash3d encodes 3-D coordinates into compact, prefix-ordered spatial
// hashes and builds storage and duplicate-detection tools on top of them.
//
// A hash interleaves one bit per axis in the order y, x, z, halving the axis range
// [-180, 180] at each step. The resulting bit string is kept in the high bits of a
// uint64 and rendered as geohash-style base-32 text, 5 bits per character. Nearby
// points share long prefixes, so truncating a hash yields the enclosing cell.
//
// # Core Features
//
//   - Deterministic encoding at 0 to 12 characters (0 to 60 bits), or any bit count up to 64
//   - Base-32 and binary text rendering
//   - Prefix ordering, suitable for sorted indexes and range scans
//   - A binary blob format with optional compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//   - Near-duplicate detection by hash collision within groups
//
// # Basic Usage
//
// Encoding a point:
//
//	h, _ := geohash3d.Encode(12.5, -3.25, 40.0, 8)
//	text, _ := h.ToBase32() // "f9gn9myh"
//
// Storing hashes:
//
//	encoder, _ := geohash3d.NewDefaultHashEncoder()
//	encoder.AddPoint(12.5, -3.25, 40.0, 8)
//	encoder.AddPoint(0, 0, 0, 8)
//	blob, _ := encoder.Finish()
//
//	decoder, _ := geohash3d.NewHashDecoder(blob.Bytes())
//	decoded, _ := decoder.Decode()
//	for i, h := range decoded.All() {
//	    fmt.Println(i, h)
//	}
//
// Finding near-duplicates:
//
//	detector, _ := geohash3d.NewDetector()
//	conflicts, _ := detector.Detect(points)
//
// # Package Structure
//
// This package provides top-level wrappers around the spatial, blob and conflict
// packages for the common cases. Use those packages directly for full control.
package geohash3d

import (
	"github.com/arloliu/geohash3d/blob"
	"github.com/arloliu/geohash3d/conflict"
	"github.com/arloliu/geohash3d/format"
	"github.com/arloliu/geohash3d/spatial"
)

var defaultHashEncoderOptions = []blob.HashEncoderOption{
	blob.WithLittleEndian(),
	blob.WithSorted(true),
	blob.WithCompression(format.CompressionZstd),
}

// Encode hashes a point at the given character precision.
//
// See spatial.Encode.
func Encode(x, y, z float64, characterPrecision int) (spatial.Hash, error) {
	return spatial.Encode(x, y, z, characterPrecision)
}

// EncodeBits hashes a point to an exact number of bits in [0, 64].
//
// See spatial.EncodeBits.
func EncodeBits(x, y, z float64, bitPrecision int) (spatial.Hash, error) {
	return spatial.EncodeBits(x, y, z, bitPrecision)
}

// EncodeString hashes a point and returns its base-32 text.
//
// Example:
//
//	s, _ := geohash3d.EncodeString(0, 0, 0, 4) // "w000"
func EncodeString(x, y, z float64, characterPrecision int) (string, error) {
	return spatial.EncodeString(x, y, z, characterPrecision)
}

// NewHashEncoder creates a blob encoder with custom options.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithSorted(true|false)
//
// Returns an error if the configuration is invalid.
func NewHashEncoder(opts ...blob.HashEncoderOption) (*blob.HashEncoder, error) {
	return blob.NewHashEncoder(opts...)
}

// NewDefaultHashEncoder creates a blob encoder with recommended settings:
//   - Little-endian byte order
//   - Sorted records, so HashBlob.Contains and HashBlob.WithPrefix can seek
//   - Zstd compression (sorted hashes share long prefixes and compress well)
//
// Returns:
//   - *blob.HashEncoder: The created encoder
//   - error: An error if the configuration is invalid
func NewDefaultHashEncoder() (*blob.HashEncoder, error) {
	return blob.NewHashEncoder(defaultHashEncoderOptions...)
}

// NewHashDecoder creates a decoder for a blob produced by a HashEncoder.
//
// Returns an error if the header is malformed.
func NewHashDecoder(data []byte) (*blob.HashDecoder, error) {
	return blob.NewHashDecoder(data)
}

// NewDetector creates a near-duplicate detector.
//
// Available options:
//   - conflict.WithPrecision(n): character precision, default conflict.DefaultPrecision
//   - conflict.WithLogger(logger): structured logger, default discards
//   - conflict.WithConcurrency(n): group parallelism for DetectGroups
func NewDetector(opts ...conflict.Option) (*conflict.Detector, error) {
	return conflict.NewDetector(opts...)
}
