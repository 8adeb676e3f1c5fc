// Package endian provides the byte order engine used by the map item codec.
//
// Every integer and float in a map item stream is little-endian. The engine
// couples binary.ByteOrder with binary.AppendByteOrder so readers index into a
// buffer and writers append to one through the same value:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, uid)
//	uid = engine.Uint64(buf[off:])
//
// # Thread Safety
//
// The returned engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// the map item format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
//
// The map format never uses it; it exists so codecs can be exercised against
// a foreign byte order in tests.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x02
}
