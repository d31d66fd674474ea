package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is selected at build time: klauspost/compress/zstd by default,
// valyala/gozstd with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
