package blob

import (
	"iter"
	"slices"

	"github.com/arloliu/geohash3d/format"
	"github.com/arloliu/geohash3d/section"
	"github.com/arloliu/geohash3d/spatial"
)

// HashBlob is an immutable, decoded hash blob.
type HashBlob struct {
	data   []byte
	header section.HashHeader
	hashes []spatial.Hash
}

// Bytes returns the serialized blob. The caller must not modify it.
func (b HashBlob) Bytes() []byte {
	return b.data
}

// Len returns the number of hashes in the blob.
func (b HashBlob) Len() int {
	return len(b.hashes)
}

// At returns the hash at index i. It panics if i is out of range.
func (b HashBlob) At(i int) spatial.Hash {
	return b.hashes[i]
}

// Hashes returns a copy of the hashes in payload order.
func (b HashBlob) Hashes() []spatial.Hash {
	return slices.Clone(b.hashes)
}

// All iterates over the hashes in payload order.
func (b HashBlob) All() iter.Seq2[int, spatial.Hash] {
	return func(yield func(int, spatial.Hash) bool) {
		for i, h := range b.hashes {
			if !yield(i, h) {
				return
			}
		}
	}
}

// IsSorted reports whether the payload was written in spatial.Compare order.
func (b HashBlob) IsSorted() bool {
	return b.header.Flag.IsSorted()
}

// Compression returns the payload compression type.
func (b HashBlob) Compression() format.CompressionType {
	return b.header.Flag.CompressionType
}

// Contains reports whether h is in the blob, using binary search for sorted blobs.
func (b HashBlob) Contains(h spatial.Hash) bool {
	if b.IsSorted() {
		_, found := slices.BinarySearchFunc(b.hashes, h, spatial.Compare)
		return found
	}

	return slices.Contains(b.hashes, h)
}

// WithPrefix iterates over the hashes that have p as a prefix.
//
// In a sorted blob all hashes sharing a prefix are contiguous and start at the
// position where p itself would be inserted.
func (b HashBlob) WithPrefix(p spatial.Hash) iter.Seq[spatial.Hash] {
	return func(yield func(spatial.Hash) bool) {
		if !b.IsSorted() {
			for _, h := range b.hashes {
				if h.HasPrefix(p) && !yield(h) {
					return
				}
			}

			return
		}

		start, _ := slices.BinarySearchFunc(b.hashes, p, spatial.Compare)
		for _, h := range b.hashes[start:] {
			if !h.HasPrefix(p) {
				return
			}
			if !yield(h) {
				return
			}
		}
	}
}
