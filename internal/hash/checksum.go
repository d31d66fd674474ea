// Package hash provides the 64-bit checksums used by hash blobs.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of a byte payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
