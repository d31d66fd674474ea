package spatial

import (
	"fmt"

	"github.com/arloliu/geohash3d/endian"
	"github.com/arloliu/geohash3d/errs"
)

// RecordSize is the size of a binary hash record: 8 payload bytes followed by one
// precision byte.
const RecordSize = 9

// AppendBinary appends the 9-byte record of h to dst and returns the extended slice.
func (h Hash) AppendBinary(engine endian.EndianEngine, dst []byte) []byte {
	dst = engine.AppendUint64(dst, h.bits)

	return append(dst, h.significantBits)
}

// DecodeBinary decodes a 9-byte record written by AppendBinary.
//
// Parameters:
//   - engine: Byte order the record was written with
//   - src: Record bytes, exactly RecordSize long
//
// Returns:
//   - Hash: Decoded hash
//   - error: ErrInvalidRecordSize, ErrInvalidPrecision if the precision byte exceeds 64,
//     or ErrInvalidPadding if bits past the precision are set
func DecodeBinary(engine endian.EndianEngine, src []byte) (Hash, error) {
	if len(src) != RecordSize {
		return Hash{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidRecordSize, len(src), RecordSize)
	}

	bits := engine.Uint64(src[:8])
	sb := src[8]
	if sb > MaxBitPrecision {
		return Hash{}, fmt.Errorf("%w: record precision %d bits", errs.ErrInvalidPrecision, sb)
	}
	if bits&^prefixMask(int(sb)) != 0 {
		return Hash{}, fmt.Errorf("%w: %#016x with %d significant bits", errs.ErrInvalidPadding, bits, sb)
	}

	return Hash{bits: bits, significantBits: sb}, nil
}
