package blob

import (
	"fmt"

	"github.com/arloliu/geohash3d/compress"
	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/internal/hash"
	"github.com/arloliu/geohash3d/section"
	"github.com/arloliu/geohash3d/spatial"
)

// HashDecoder decodes a serialized hash blob.
type HashDecoder struct {
	data   []byte
	header section.HashHeader
}

// NewHashDecoder parses and validates the header of data.
//
// The decoder keeps a reference to data; it must not be modified until Decode returns.
func NewHashDecoder(data []byte) (*HashDecoder, error) {
	header, err := section.ParseHashHeader(data)
	if err != nil {
		return nil, err
	}

	return &HashDecoder{data: data, header: header}, nil
}

// Header returns the parsed blob header.
func (d *HashDecoder) Header() section.HashHeader {
	return d.header
}

// Decode decompresses the payload, verifies it and decodes every record.
//
// Returns:
//   - HashBlob: Decoded blob
//   - error: Decompression errors, ErrChecksumMismatch, ErrHashCountMismatch, or
//     record decoding errors
func (d *HashDecoder) Decode() (HashBlob, error) {
	codec, err := compress.GetCodec(d.header.Flag.CompressionType)
	if err != nil {
		return HashBlob{}, err
	}

	payload, err := codec.Decompress(d.data[section.PayloadOffset:])
	if err != nil {
		return HashBlob{}, err
	}

	if want := uint64(d.header.HashCount) * spatial.RecordSize; uint64(len(payload)) != want {
		return HashBlob{}, fmt.Errorf("%w: header says %d hashes (%d bytes), payload has %d bytes",
			errs.ErrHashCountMismatch, d.header.HashCount, want, len(payload))
	}
	if sum := hash.Checksum(payload); sum != d.header.Checksum {
		return HashBlob{}, fmt.Errorf("%w: got %#016x, want %#016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	engine := d.header.Flag.GetEndianEngine()
	hashes := make([]spatial.Hash, d.header.HashCount)
	for i := range hashes {
		off := i * spatial.RecordSize
		h, err := spatial.DecodeBinary(engine, payload[off:off+spatial.RecordSize])
		if err != nil {
			return HashBlob{}, fmt.Errorf("record %d: %w", i, err)
		}
		hashes[i] = h
	}

	if d.header.Flag.IsSorted() && !spatial.IsSorted(hashes) {
		return HashBlob{}, fmt.Errorf("%w: sorted flag set on unsorted payload", errs.ErrInvalidHeaderFlags)
	}

	return HashBlob{data: d.data, header: d.header, hashes: hashes}, nil
}

// DecodeHashes is a shortcut for NewHashDecoder followed by Decode.
func DecodeHashes(data []byte) ([]spatial.Hash, error) {
	decoder, err := NewHashDecoder(data)
	if err != nil {
		return nil, err
	}

	hb, err := decoder.Decode()
	if err != nil {
		return nil, err
	}

	return hb.Hashes(), nil
}
