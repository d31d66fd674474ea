package blob

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/geohash3d/compress"
	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/internal/hash"
	"github.com/arloliu/geohash3d/internal/options"
	"github.com/arloliu/geohash3d/internal/pool"
	"github.com/arloliu/geohash3d/section"
	"github.com/arloliu/geohash3d/spatial"
)

// MaxHashCount is the maximum number of hashes in a single blob.
const MaxHashCount = math.MaxUint32

// HashEncoder accumulates hashes and serializes them into a hash blob.
//
// A HashEncoder is not safe for concurrent use, and it cannot be reused after Finish.
type HashEncoder struct {
	header   *section.HashHeader
	codec    compress.Codec
	hashes   []spatial.Hash
	finished bool
}

// NewHashEncoder creates an encoder configured by opts.
//
// Returns:
//   - *HashEncoder: The created encoder
//   - error: An error if an option is invalid
func NewHashEncoder(opts ...HashEncoderOption) (*HashEncoder, error) {
	cfg := newHashEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.header.Flag.CompressionType)
	if err != nil {
		return nil, err
	}

	return &HashEncoder{
		header: cfg.header,
		codec:  codec,
	}, nil
}

// Add appends a hash.
//
// Returns:
//   - error: ErrEncoderFinished after Finish, ErrHashCountExceeded past MaxHashCount
func (e *HashEncoder) Add(h spatial.Hash) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if uint64(len(e.hashes)) >= MaxHashCount {
		return errs.ErrHashCountExceeded
	}
	e.hashes = append(e.hashes, h)

	return nil
}

// AddPoint encodes a point at the given character precision and appends the hash.
func (e *HashEncoder) AddPoint(x, y, z float64, characterPrecision int) error {
	h, err := spatial.Encode(x, y, z, characterPrecision)
	if err != nil {
		return err
	}

	return e.Add(h)
}

// Len returns the number of hashes added so far.
func (e *HashEncoder) Len() int {
	return len(e.hashes)
}

// Finish serializes the accumulated hashes.
//
// Returns:
//   - HashBlob: Blob holding both the serialized bytes and the decoded hashes
//   - error: ErrEncoderFinished on a second call, or a compression error
func (e *HashEncoder) Finish() (HashBlob, error) {
	if e.finished {
		return HashBlob{}, errs.ErrEncoderFinished
	}
	e.finished = true

	if e.header.Flag.IsSorted() {
		spatial.Sort(e.hashes)
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	engine := e.header.Flag.GetEndianEngine()
	buf.Grow(len(e.hashes) * spatial.RecordSize)
	for _, h := range e.hashes {
		buf.B = h.AppendBinary(engine, buf.B)
	}

	payload := buf.Bytes()
	e.header.HashCount = uint32(len(e.hashes)) //nolint:gosec // bounded by MaxHashCount in Add
	e.header.Checksum = hash.Checksum(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return HashBlob{}, fmt.Errorf("compress %s payload: %w", e.header.Flag.CompressionType, err)
	}

	data := make([]byte, 0, section.HeaderSize+len(compressed))
	data = e.header.AppendTo(data)
	data = append(data, compressed...)

	return HashBlob{
		data:   data,
		header: *e.header,
		hashes: slices.Clip(e.hashes),
	}, nil
}
