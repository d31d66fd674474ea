package spatial

import "slices"

// signFlip toggles the top bit so that a signed comparison of the payload orders
// hashes by their bit prefix.
const signFlip = uint64(1) << 63

// Compare orders hashes by payload, then by precision.
//
// The payloads are compared as signed integers after flipping their top bit, which
// sorts them in ascending bit-prefix order. Equal payloads are ordered by
// significant bits, so a coarser hash sorts before a finer one that extends it with
// zero bits.
//
// Returns -1 if a < b, 0 if a == b and +1 if a > b.
func Compare(a, b Hash) int {
	ab, bb := int64(a.bits^signFlip), int64(b.bits^signFlip)
	switch {
	case ab < bb:
		return -1
	case ab > bb:
		return 1
	case a.significantBits < b.significantBits:
		return -1
	case a.significantBits > b.significantBits:
		return 1
	default:
		return 0
	}
}

// Compare is the method form of Compare.
func (h Hash) Compare(other Hash) int {
	return Compare(h, other)
}

// Sort sorts hashes in place in Compare order.
func Sort(hashes []Hash) {
	slices.SortFunc(hashes, Compare)
}

// IsSorted reports whether hashes are in Compare order.
func IsSorted(hashes []Hash) bool {
	return slices.IsSortedFunc(hashes, Compare)
}
