package section

import (
	"fmt"

	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/format"
)

// HashHeader is the fixed-size header at the start of a hash blob.
type HashHeader struct {
	// Flag packs the options and compression type.
	Flag HashFlag // byte offset 0-2
	// HashCount is the number of records in the payload.
	HashCount uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// NewHashHeader creates a header with default flags. Count and checksum are set by
// the encoder when it finishes.
func NewHashHeader() *HashHeader {
	return &HashHeader{Flag: NewHashFlag()}
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes, ErrInvalidHeaderFlags if the
//     reserved byte is set, or flag validation errors
func (h *HashHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.CompressionType = format.CompressionType(data[2])
	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte is %#x", errs.ErrInvalidHeaderFlags, data[3])
	}
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.HashCount = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *HashHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *HashHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	dst = append(dst, byte(h.Flag.CompressionType), 0)
	dst = engine.AppendUint32(dst, h.HashCount)

	return engine.AppendUint64(dst, h.Checksum)
}

// ParseHashHeader parses a HashHeader from the start of data.
func ParseHashHeader(data []byte) (HashHeader, error) {
	if len(data) < HeaderSize {
		return HashHeader{}, fmt.Errorf("%w: got %d bytes, want at least %d",
			errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := HashHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return HashHeader{}, err
	}

	return h, nil
}
