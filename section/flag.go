package section

import (
	"fmt"

	"github.com/arloliu/geohash3d/endian"
	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/format"
)

// HashFlag holds the packed options and the compression type of a hash blob.
type HashFlag struct {
	// Options packs the endianness and sorted bits with the magic number.
	Options uint16
	// CompressionType is the codec applied to the payload.
	CompressionType format.CompressionType
}

// NewHashFlag returns the default flag: little-endian, unsorted, uncompressed.
func NewHashFlag() HashFlag {
	return HashFlag{
		Options:         MagicHashV1Opt,
		CompressionType: format.CompressionNone,
	}
}

func (f HashFlag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

func (f HashFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

func (f *HashFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

func (f *HashFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the byte order recorded in the options.
func (f HashFlag) GetEndianEngine() endian.EndianEngine {
	return endian.GetEngine(f.IsBigEndian())
}

// IsSorted reports whether the payload records are in spatial.Compare order.
func (f HashFlag) IsSorted() bool {
	return f.Options&SortedMask != 0
}

// SetSorted sets or clears the sorted bit.
func (f *HashFlag) SetSorted(sorted bool) {
	if sorted {
		f.Options |= SortedMask
	} else {
		f.Options &^= SortedMask
	}
}

// IsValidMagicNumber reports whether the options carry the hash blob magic number.
func (f HashFlag) IsValidMagicNumber() bool {
	return f.Options&MagicNumberMask == MagicHashV1Opt
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f HashFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: %#04x", errs.ErrInvalidMagicNumber, f.Options&MagicNumberMask)
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidHeaderFlags)
	}
	if !f.CompressionType.IsValid() {
		return fmt.Errorf("%w: compression type %#x", errs.ErrInvalidHeaderFlags, uint8(f.CompressionType))
	}

	return nil
}
