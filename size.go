package vlen

import (
	"github.com/vlen-go/vlen/internal/layout"
	"lukechampine.com/uint128"
)

// EncodedSizeUint64 returns the exact canonical encoded size of v, in
// [1, MaxLen64]. It is a single table lookup on the value's bit length,
// cheap enough to size buffers value by value.
func EncodedSizeUint64(v uint64) int {
	return layout.Size64(v)
}

// EncodedSizeUint8 returns the canonical size of an 8-bit value, in [1, MaxLen8].
func EncodedSizeUint8(v uint8) int {
	return layout.Size32(uint32(v))
}

// EncodedSizeUint16 returns the canonical size of a 16-bit value, in [1, MaxLen16].
func EncodedSizeUint16(v uint16) int {
	return layout.Size32(uint32(v))
}

// EncodedSizeUint32 returns the canonical size of a 32-bit value, in [1, MaxLen32].
func EncodedSizeUint32(v uint32) int {
	return layout.Size32(v)
}

// EncodedSizeUint128 returns the canonical size of a 128-bit value, in
// [1, MaxLen128].
func EncodedSizeUint128(v uint128.Uint128) int {
	return layout.Size128(v.Lo, v.Hi)
}
