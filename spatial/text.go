package spatial

import (
	"fmt"
	"strings"

	"github.com/arloliu/geohash3d/errs"
)

// Base32Alphabet is the geohash alphabet: digits followed by lowercase letters
// without a, i, l and o. The order is part of the hash format.
const Base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const (
	firstFiveBitsMask = uint64(0xf8) << 56
	firstBitMask      = uint64(1) << 63
)

// ToBase32 renders the significant bits as base-32 characters, most significant
// 5-bit group first.
//
// Returns:
//   - string: SignificantBits / 5 characters drawn from Base32Alphabet
//   - error: ErrPrecisionNotEncodable if SignificantBits is not a multiple of 5
func (h Hash) ToBase32() (string, error) {
	if h.significantBits%BitsPerCharacter != 0 {
		return "", fmt.Errorf("%w: cannot render %d bits as base-32",
			errs.ErrPrecisionNotEncodable, h.significantBits)
	}

	n := int(h.significantBits) / BitsPerCharacter
	buf := make([]byte, n)
	bits := h.bits
	for i := range buf {
		buf[i] = Base32Alphabet[(bits&firstFiveBitsMask)>>59]
		bits <<= BitsPerCharacter
	}

	return string(buf), nil
}

// ToBinaryString renders the significant bits as '0' and '1' characters, most
// significant bit first.
func (h Hash) ToBinaryString() string {
	var sb strings.Builder
	sb.Grow(int(h.significantBits))

	bits := h.bits
	for range h.significantBits {
		if bits&firstBitMask != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		bits <<= 1
	}

	return sb.String()
}
