// Package errs defines the sentinel errors returned by geohash3d packages.
//
// Callers should test for them with errors.Is, since most call sites wrap the
// sentinel with additional context.
package errs

import "errors"

// Encoding errors.
var (
	// ErrInvalidPrecision is returned when a requested character or bit precision is
	// outside the range the 64-bit payload can represent.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrPrecisionNotEncodable is returned when a hash is projected onto base-32
	// characters but its significant bits are not a multiple of 5.
	ErrPrecisionNotEncodable = errors.New("precision is not a multiple of 5 bits")
	// ErrInvalidRecordSize is returned when a binary hash record is not exactly 9 bytes.
	ErrInvalidRecordSize = errors.New("invalid hash record size")
	// ErrInvalidPadding is returned when a decoded hash has non-zero bits past its precision.
	ErrInvalidPadding = errors.New("non-zero padding bits in hash record")
)

// Blob errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrHashCountMismatch  = errors.New("hash count does not match payload size")
	ErrHashCountExceeded  = errors.New("hash count exceeds maximum")
	ErrEncoderFinished    = errors.New("encoder already finished")
)

// Conflict detection errors.
var (
	ErrInvalidGroupKey = errors.New("invalid group key")
)
