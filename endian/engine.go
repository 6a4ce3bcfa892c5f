// Package endian provides the byte order used when fixed-width integers are
// written through a strview.Segment or read back from a strview.View.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the
// same value serves both the in-place Put/Get path used by the encoding
// package and append-style code:
//
//	engine := endian.GetLittleEndianEngine()
//	cursor, err := encoding.AppendUint32(cursor, engine, 0xCAFEBABE)
//
// Wire formats shared with other devices should pin an explicit order. Native
// is for scratch data that never leaves the host.
//
// All functions in this package are safe for concurrent use; the returned
// engines are stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's byte order by inspecting the memory
// layout of a fixed integer.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	// The lowest address holds the MSB on big-endian hosts.
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// ByName resolves "little", "big" or "native" (case-insensitive) to an engine.
//
// Returns an error for any other name.
func ByName(name string) (EndianEngine, error) {
	switch strings.ToLower(name) {
	case "little", "le":
		return GetLittleEndianEngine(), nil
	case "big", "be":
		return GetBigEndianEngine(), nil
	case "native":
		return Native(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", name)
	}
}
