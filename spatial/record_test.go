package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geohash3d/endian"
	"github.com/arloliu/geohash3d/errs"
)

func TestAppendBinary_Layout(t *testing.T) {
	h, err := Encode(0, 0, 0, 4)
	require.NoError(t, err)

	little := h.AppendBinary(endian.GetLittleEndianEngine(), nil)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0xe0, 20}, little)

	big := h.AppendBinary(endian.GetBigEndianEngine(), []byte{0xaa})
	require.Equal(t, []byte{0xaa, 0xe0, 0, 0, 0, 0, 0, 0, 0, 20}, big)
}

func TestDecodeBinary_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}
	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			for bits := 0; bits <= MaxBitPrecision; bits += 7 {
				h, err := EncodeBits(12.5, -3.25, 40.0, bits)
				require.NoError(t, err)

				buf := h.AppendBinary(engine, nil)
				require.Len(t, buf, RecordSize)

				decoded, err := DecodeBinary(engine, buf)
				require.NoError(t, err)
				require.Equal(t, h, decoded)
			}
		})
	}
}

func TestDecodeBinary_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := DecodeBinary(engine, []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, err = DecodeBinary(engine, make([]byte, RecordSize+1))
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	tooPrecise := Hash{}.AppendBinary(engine, nil)
	tooPrecise[8] = 65
	_, err = DecodeBinary(engine, tooPrecise)
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)

	// One significant bit, but the second bit is set.
	dirty := engine.AppendUint64(nil, 0xc000000000000000)
	dirty = append(dirty, 1)
	_, err = DecodeBinary(engine, dirty)
	require.ErrorIs(t, err, errs.ErrInvalidPadding)
}
