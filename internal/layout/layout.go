// Package layout defines the byte-level layout of the vlen encoding: tier
// markers, data masks, and the lookup tables that map first bytes to encoded
// lengths and value bit-lengths to canonical sizes.
//
// The tables underlie both the scalar codec in the root package and the
// block kernels in internal/vec, so the two implementations cannot drift
// apart on layout decisions.
package layout

import "math/bits"

// Maximum encoded length per integer width, including the first byte.
const (
	MaxLen8   = 2
	MaxLen16  = 3
	MaxLen32  = 5
	MaxLen64  = 9
	MaxLen128 = 17
)

// First-byte markers for the multi-byte tiers. A first byte below Prefix1 is
// an immediate value.
const (
	Prefix1 byte = 0x80 // 10xxxxxx: 6 data bits, one continuation byte
	Prefix2 byte = 0xC0 // 110xxxxx: 5 data bits, two continuation bytes
	Prefix3 byte = 0xE0 // 1110xxxx: 4 data bits, three continuation bytes
	Length  byte = 0xF0 // 1111nnnn: n+1 little-endian payload bytes follow
)

// Tier identifies which of the three layouts a first byte declares.
type Tier uint8

const (
	TierImmediate Tier = 0x1 // TierImmediate is a single-byte value below 2^7.
	TierPrefix    Tier = 0x2 // TierPrefix is a prefix-varint form (2-4 bytes).
	TierLength    Tier = 0x3 // TierLength is a length-prefixed form (5-17 bytes).
)

// TierOf returns the layout tier declared by first byte b.
func TierOf(b byte) Tier {
	switch {
	case b < Prefix1:
		return TierImmediate
	case b < Length:
		return TierPrefix
	default:
		return TierLength
	}
}

func (t Tier) String() string {
	switch t {
	case TierImmediate:
		return "Immediate"
	case TierPrefix:
		return "Prefix"
	case TierLength:
		return "Length"
	default:
		return "Unknown"
	}
}

// TotalLen maps a first byte to the total encoded length it declares,
// including the first byte itself. Defined for all 256 byte values; the
// range is [1, 17].
var TotalLen [256]uint8

// sizeByBits64 and sizeByBits128 map bits.Len of a value to its canonical
// encoded size. Entry 0 covers the zero value.
var (
	sizeByBits64  [65]uint8
	sizeByBits128 [129]uint8
)

func init() {
	for b := range TotalLen {
		switch {
		case b < int(Prefix1):
			TotalLen[b] = 1
		case b < int(Prefix2):
			TotalLen[b] = 2
		case b < int(Prefix3):
			TotalLen[b] = 3
		case b < int(Length):
			TotalLen[b] = 4
		default:
			TotalLen[b] = uint8(b&0x0F) + 2
		}
	}

	for n := range sizeByBits128 {
		var size int
		switch {
		case n <= 7:
			size = 1
		case n <= 14:
			size = 2
		case n <= 21:
			size = 3
		case n <= 28:
			size = 4
		default:
			// Length-prefixed: one header byte plus the value's bytes,
			// clamped to at least four payload bytes by the tier boundary.
			size = (n+7)/8 + 1
		}
		sizeByBits128[n] = uint8(size)
		if n < len(sizeByBits64) {
			sizeByBits64[n] = uint8(size)
		}
	}
}

// Size32 returns the canonical encoded size of v, in [1, 5].
func Size32(v uint32) int {
	return int(sizeByBits64[bits.Len32(v)])
}

// Size64 returns the canonical encoded size of v, in [1, 9].
func Size64(v uint64) int {
	return int(sizeByBits64[bits.Len64(v)])
}

// Size128 returns the canonical encoded size of the 128-bit value with the
// given little-endian halves, in [1, 17].
func Size128(lo, hi uint64) int {
	if hi == 0 {
		return int(sizeByBits64[bits.Len64(lo)])
	}

	return int(sizeByBits128[64+bits.Len64(hi)])
}
