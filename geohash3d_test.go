package geohash3d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geohash3d/blob"
	"github.com/arloliu/geohash3d/conflict"
	"github.com/arloliu/geohash3d/format"
	"github.com/arloliu/geohash3d/spatial"
)

func TestEncodeString(t *testing.T) {
	s, err := EncodeString(0, 0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, "w000", s)

	h, err := Encode(12.5, -3.25, 40.0, 8)
	require.NoError(t, err)
	text, err := h.ToBase32()
	require.NoError(t, err)
	require.Equal(t, "f9gn9myh", text)

	b, err := EncodeBits(0, 0, 0, 3)
	require.NoError(t, err)
	require.Equal(t, "111", b.ToBinaryString())
}

// TestNewDefaultHashEncoder verifies the default encoder writes a sorted, zstd-compressed blob
func TestNewDefaultHashEncoder(t *testing.T) {
	encoder, err := NewDefaultHashEncoder()
	require.NoError(t, err)

	require.NoError(t, encoder.AddPoint(100, -50, 25, 12))
	require.NoError(t, encoder.AddPoint(0, 0, 0, 4))
	require.NoError(t, encoder.AddPoint(-10, -20, -30, 4))

	hb, err := encoder.Finish()
	require.NoError(t, err)
	require.True(t, hb.IsSorted())
	require.Equal(t, format.CompressionZstd, hb.Compression())

	decoder, err := NewHashDecoder(hb.Bytes())
	require.NoError(t, err)
	decoded, err := decoder.Decode()
	require.NoError(t, err)
	require.Equal(t, 3, decoded.Len())
	require.True(t, spatial.IsSorted(decoded.Hashes()))

	origin, err := Encode(0, 0, 0, 4)
	require.NoError(t, err)
	require.True(t, decoded.Contains(origin))
}

func TestNewHashEncoder(t *testing.T) {
	encoder, err := NewHashEncoder(blob.WithBigEndian(), blob.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.NoError(t, encoder.AddPoint(1, 2, 3, 6))

	hb, err := encoder.Finish()
	require.NoError(t, err)
	require.False(t, hb.IsSorted())
	require.Equal(t, format.CompressionS2, hb.Compression())

	_, err = NewHashEncoder(blob.WithCompression(format.CompressionType(0)))
	require.Error(t, err)
}

func TestNewDetector(t *testing.T) {
	d, err := NewDetector(conflict.WithPrecision(4))
	require.NoError(t, err)

	conflicts, err := d.Detect([]conflict.Point{
		{Group: "t0", ID: 1, X: 0, Y: 0, Z: 0},
		{Group: "t0", ID: 2, X: 0.5, Y: 0.5, Z: 0.5},
		{Group: "t1", ID: 3, X: 0.5, Y: 0.5, Z: 0.5},
	})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, uint64(2), conflicts[0].Point.ID)
	require.Equal(t, uint64(1), conflicts[0].FirstID)
}
