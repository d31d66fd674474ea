// Package endian provides the byte order used for binary hash records.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so that record
// encoding can append directly to a destination buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = h.AppendBinary(engine, buf)
//
// Little-endian is the default for geohash3d blobs. Big-endian exists for
// interoperability with systems that store the 64-bit payload in network order.
//
// # Thread Safety
//
// The returned engines are the stateless binary.LittleEndian and binary.BigEndian
// values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is set, little-endian otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}
