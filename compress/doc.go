// Package compress provides the payload codecs for hash blobs.
//
// A hash blob payload is a sequence of 9-byte records (an 8-byte left-justified hash
// payload followed by a 1-byte precision). Hashes of nearby points share leading
// bytes and all hashes of one precision share the trailing byte, so sorted payloads
// compress well with general-purpose algorithms.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Zstd Backends
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd implementation by default.
// Building with the gozstd tag (and cgo enabled) switches to the cgo binding
// github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard Zstandard frames, so blobs written by one decode
// with the other.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool'd encoders and decoders and are
// safe for concurrent use.
package compress
