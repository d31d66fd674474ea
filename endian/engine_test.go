package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	bytes := make([]byte, 2)
	engine.PutUint16(bytes, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, bytes, "little endian should put LSB first")
	require.Equal(t, uint16(0x0102), engine.Uint16(bytes))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	bytes := make([]byte, 2)
	engine.PutUint16(bytes, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, bytes, "big endian should put MSB first")
	require.Equal(t, uint16(0x0102), engine.Uint16(bytes))
}

func TestGetEngine(t *testing.T) {
	require.Equal(t, binary.BigEndian, GetEngine(true))
	require.Equal(t, binary.LittleEndian, GetEngine(false))
}

func TestIsBigEndian(t *testing.T) {
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestEndianEngines_Uint64AppendRoundTrip(t *testing.T) {
	const v uint64 = 0x0102030405060708

	little := GetLittleEndianEngine().AppendUint64(nil, v)
	big := GetBigEndianEngine().AppendUint64(nil, v)

	require.Len(t, little, 8)
	require.Len(t, big, 8)
	require.NotEqual(t, little, big)
	require.Equal(t, v, GetLittleEndianEngine().Uint64(little))
	require.Equal(t, v, GetBigEndianEngine().Uint64(big))
}
