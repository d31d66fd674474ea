package blob

import (
	"fmt"

	"github.com/arloliu/geohash3d/format"
	"github.com/arloliu/geohash3d/internal/options"
	"github.com/arloliu/geohash3d/section"
)

// hashEncoderConfig collects the settings applied by HashEncoderOption.
type hashEncoderConfig struct {
	header *section.HashHeader
}

func newHashEncoderConfig() *hashEncoderConfig {
	return &hashEncoderConfig{header: section.NewHashHeader()}
}

func (c *hashEncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("invalid payload compression: %v", comp)
	}
	c.header.Flag.CompressionType = comp

	return nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

func (c *hashEncoderConfig) setEndianness(e endianness) {
	if e == bigEndianOpt {
		c.header.Flag.WithBigEndian()
		return
	}
	c.header.Flag.WithLittleEndian()
}

// HashEncoderOption configures a HashEncoder.
type HashEncoderOption = options.Option[*hashEncoderConfig]

// WithLittleEndian writes the payload and header fields little-endian. It is the default.
func WithLittleEndian() HashEncoderOption {
	return options.NoError(func(c *hashEncoderConfig) {
		c.setEndianness(littleEndianOpt)
	})
}

// WithBigEndian writes the payload and header fields big-endian.
func WithBigEndian() HashEncoderOption {
	return options.NoError(func(c *hashEncoderConfig) {
		c.setEndianness(bigEndianOpt)
	})
}

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) HashEncoderOption {
	return options.New(func(c *hashEncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithSorted sorts the hashes in spatial.Compare order before writing them, which
// lets HashBlob.Contains use binary search and improves compression.
func WithSorted(sorted bool) HashEncoderOption {
	return options.NoError(func(c *hashEncoderConfig) {
		c.header.Flag.SetSorted(sorted)
	})
}
