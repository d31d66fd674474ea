package spatial

import (
	"fmt"

	"github.com/arloliu/geohash3d/errs"
)

const (
	// MaxBitPrecision is the width of the hash payload in bits.
	MaxBitPrecision = 64
	// MaxCharacterPrecision is the longest base-32 hash the payload can hold.
	MaxCharacterPrecision = 12
	// BitsPerCharacter is the number of payload bits carried by one base-32 character.
	BitsPerCharacter = 5

	maxCharacterBits = MaxCharacterPrecision * BitsPerCharacter // 60

	rangeMin = -180.0
	rangeMax = 180.0
)

// Hash is an encoded point in 3D space.
//
// The zero value is the empty hash: no significant bits. Two hashes are equal iff both
// the payload bits and the precision are equal, so Hash can be compared with == and
// used as a map key.
type Hash struct {
	// bits is the payload, left-justified. Bits past significantBits are always zero.
	bits uint64
	// significantBits is the number of meaningful leading bits in bits, in [0, 64].
	significantBits uint8
}

// axisRange is the remaining uncertainty interval of one axis during encoding.
type axisRange struct {
	lo, hi float64
}

// divide halves r around its midpoint and reports which half v falls in.
// A value exactly on the midpoint goes to the upper half.
func (r *axisRange) divide(v float64) uint64 {
	mid := (r.lo + r.hi) / 2
	if v >= mid {
		r.lo = mid
		return 1
	}
	r.hi = mid

	return 0
}

// Encode encodes a point with the given number of base-32 characters of precision.
//
// Parameters:
//   - x, y, z: Point coordinates. Values outside [-180, 180] saturate (see package docs)
//   - characterPrecision: Number of base-32 characters, in [0, MaxCharacterPrecision]
//
// Returns:
//   - Hash: Hash with characterPrecision*5 significant bits
//   - error: ErrInvalidPrecision if characterPrecision is out of range
func Encode(x, y, z float64, characterPrecision int) (Hash, error) {
	if characterPrecision < 0 || characterPrecision > MaxCharacterPrecision {
		return Hash{}, fmt.Errorf("%w: %d characters, must be in [0, %d]",
			errs.ErrInvalidPrecision, characterPrecision, MaxCharacterPrecision)
	}

	return encode(x, y, z, min(characterPrecision*BitsPerCharacter, maxCharacterBits)), nil
}

// EncodeBits encodes a point with an arbitrary number of significant bits.
//
// Hashes built with a bit count that is not a multiple of 5 cannot be rendered with
// ToBase32.
//
// Returns:
//   - Hash: Hash with bitPrecision significant bits
//   - error: ErrInvalidPrecision if bitPrecision is outside [0, MaxBitPrecision]
func EncodeBits(x, y, z float64, bitPrecision int) (Hash, error) {
	if bitPrecision < 0 || bitPrecision > MaxBitPrecision {
		return Hash{}, fmt.Errorf("%w: %d bits, must be in [0, %d]",
			errs.ErrInvalidPrecision, bitPrecision, MaxBitPrecision)
	}

	return encode(x, y, z, bitPrecision), nil
}

// EncodeString encodes a point and returns its base-32 text form.
func EncodeString(x, y, z float64, characterPrecision int) (string, error) {
	h, err := Encode(x, y, z, characterPrecision)
	if err != nil {
		return "", err
	}

	return h.ToBase32()
}

// encode runs the interleaved subdivision. desiredBits must be in [0, 64].
//
// The axis cycle is y, x, z. It is part of the hash format and must not change.
func encode(x, y, z float64, desiredBits int) Hash {
	ranges := [3]axisRange{
		{rangeMin, rangeMax}, // y
		{rangeMin, rangeMax}, // x
		{rangeMin, rangeMax}, // z
	}
	values := [3]float64{y, x, z}

	var bits uint64
	axis := 0
	for n := 0; n < desiredBits; n++ {
		bits = bits<<1 | ranges[axis].divide(values[axis])
		if axis++; axis == len(ranges) {
			axis = 0
		}
	}

	// shifting a uint64 by 64 yields 0, which is the right answer for desiredBits == 0
	bits <<= uint(MaxBitPrecision - desiredBits)

	return Hash{bits: bits, significantBits: uint8(desiredBits)}
}

// Bits returns the left-justified payload. Bits past SignificantBits are zero.
func (h Hash) Bits() uint64 {
	return h.bits
}

// SignificantBits returns the number of meaningful leading bits.
func (h Hash) SignificantBits() int {
	return int(h.significantBits)
}

// CharacterPrecision returns the number of base-32 characters this hash renders to.
//
// Returns:
//   - int: SignificantBits / 5
//   - error: ErrPrecisionNotEncodable if SignificantBits is not a multiple of 5
func (h Hash) CharacterPrecision() (int, error) {
	if h.significantBits%BitsPerCharacter != 0 {
		return 0, fmt.Errorf("%w: %d bits", errs.ErrPrecisionNotEncodable, h.significantBits)
	}

	return int(h.significantBits) / BitsPerCharacter, nil
}

// Ord returns the significant bits right-justified as an ordinary integer.
// The empty hash has an Ord of 0.
func (h Hash) Ord() uint64 {
	return h.bits >> uint(MaxBitPrecision-int(h.significantBits))
}

// Equal reports whether h and other have identical bits and precision.
func (h Hash) Equal(other Hash) bool {
	return h == other
}

// HashCode returns a 32-bit hash code mixing the payload and the precision.
// The formula is fixed so that codes stay stable across processes.
func (h Hash) HashCode() int32 {
	f := int32(17)
	f = 31*f + int32(h.bits^(h.bits>>32))
	f = 31*f + int32(h.significantBits)

	return f
}

// Prefix returns the hash truncated to its leading bitCount bits.
//
// Truncating a hash yields exactly the hash that EncodeBits would have produced for
// the same point at bitCount bits.
//
// Returns:
//   - Hash: Truncated hash
//   - error: ErrInvalidPrecision if bitCount is negative or greater than SignificantBits
func (h Hash) Prefix(bitCount int) (Hash, error) {
	if bitCount < 0 || bitCount > int(h.significantBits) {
		return Hash{}, fmt.Errorf("%w: prefix of %d bits from a %d-bit hash",
			errs.ErrInvalidPrecision, bitCount, h.significantBits)
	}

	return Hash{bits: h.bits & prefixMask(bitCount), significantBits: uint8(bitCount)}, nil
}

// HasPrefix reports whether p is a prefix of h, that is whether h's leading
// p.SignificantBits() bits equal p's.
func (h Hash) HasPrefix(p Hash) bool {
	if p.significantBits > h.significantBits {
		return false
	}

	return h.bits&prefixMask(int(p.significantBits)) == p.bits
}

// String returns a debug representation; it is not a stable text format.
func (h Hash) String() string {
	return fmt.Sprintf("Hash{bits: %#016x, significantBits: %d}", h.bits, h.significantBits)
}

// prefixMask returns a mask selecting the leading n bits of a 64-bit word.
func prefixMask(n int) uint64 {
	if n == 0 {
		return 0
	}

	return ^uint64(0) << uint(MaxBitPrecision-n)
}
