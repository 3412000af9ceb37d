package vec

import (
	"encoding/binary"

	"github.com/vlen-go/vlen/internal/layout"
)

// High bit of every byte in a word; a zero masked word means a run of
// single-byte values.
const (
	msb4 = 0x80808080
	msb8 = 0x8080808080808080
)

// encodeU32x8 encodes src into dst in blocks of eight values. A block whose
// values all fit in one byte is packed and stored as a single word;
// otherwise each value is emitted branchlessly with one word store. Stops
// when fewer than eight values remain or the destination headroom drops
// below one worst-case value, and returns (values encoded, bytes written).
func encodeU32x8(dst []byte, src []uint32) (int, int) {
	i, off := 0, 0
	for i+8 <= len(src) && off+9 <= len(dst) {
		g := src[i : i+8 : i+8]
		if g[0]|g[1]|g[2]|g[3]|g[4]|g[5]|g[6]|g[7] < 0x80 {
			w := uint64(g[0]) | uint64(g[1])<<8 | uint64(g[2])<<16 | uint64(g[3])<<24 |
				uint64(g[4])<<32 | uint64(g[5])<<40 | uint64(g[6])<<48 | uint64(g[7])<<56
			binary.LittleEndian.PutUint64(dst[off:], w)
			i += 8
			off += 8

			continue
		}

		for j := 0; j < 8; j++ {
			if off+9 > len(dst) {
				return i, off
			}
			v := src[i]
			n := layout.Size32(v)
			dst[off] = encMarker[n] | byte(v)&encData[n]
			binary.LittleEndian.PutUint64(dst[off+1:], uint64(v)>>encShift[n])
			i++
			off += n
		}
	}

	return i, off
}

// encodeU32x4 is the 4-lane variant of encodeU32x8.
func encodeU32x4(dst []byte, src []uint32) (int, int) {
	i, off := 0, 0
	for i+4 <= len(src) && off+9 <= len(dst) {
		g := src[i : i+4 : i+4]
		if g[0]|g[1]|g[2]|g[3] < 0x80 {
			w := uint32(g[0]) | uint32(g[1])<<8 | uint32(g[2])<<16 | uint32(g[3])<<24
			binary.LittleEndian.PutUint32(dst[off:], w)
			i += 4
			off += 4

			continue
		}

		for j := 0; j < 4; j++ {
			if off+9 > len(dst) {
				return i, off
			}
			v := src[i]
			n := layout.Size32(v)
			dst[off] = encMarker[n] | byte(v)&encData[n]
			binary.LittleEndian.PutUint64(dst[off+1:], uint64(v)>>encShift[n])
			i++
			off += n
		}
	}

	return i, off
}

// decodeU32x8 decodes values from src into dst in blocks of eight. A source
// word with no high bits set yields eight values from one load; otherwise
// each value is reconstructed branchlessly from the first-byte tables.
// Stops at the source tail, when dst fills past the last whole block, or at
// a first byte declaring more than 5 total bytes (a length-prefixed payload
// wider than uint32, which only the scalar decoder range-checks), and
// returns (values decoded, bytes read).
func decodeU32x8(dst []uint32, src []byte) (int, int) {
	i, off := 0, 0
	for i+8 <= len(dst) && off+9 <= len(src) {
		w := binary.LittleEndian.Uint64(src[off:])
		if w&msb8 == 0 {
			dst[i+0] = uint32(w & 0x7F)
			dst[i+1] = uint32(w >> 8 & 0x7F)
			dst[i+2] = uint32(w >> 16 & 0x7F)
			dst[i+3] = uint32(w >> 24 & 0x7F)
			dst[i+4] = uint32(w >> 32 & 0x7F)
			dst[i+5] = uint32(w >> 40 & 0x7F)
			dst[i+6] = uint32(w >> 48 & 0x7F)
			dst[i+7] = uint32(w >> 56)
			i += 8
			off += 8

			continue
		}

		for j := 0; j < 8; j++ {
			if off+9 > len(src) {
				return i, off
			}
			b0 := src[off]
			n := int(layout.TotalLen[b0])
			if n > 5 {
				return i, off
			}
			w := binary.LittleEndian.Uint64(src[off+1:])
			dst[i] = uint32(b0&headData[b0]) | uint32((w&headContMask[b0])<<headShift[b0])
			i++
			off += n
		}
	}

	return i, off
}

// decodeU32x4 is the 4-lane variant of decodeU32x8.
func decodeU32x4(dst []uint32, src []byte) (int, int) {
	i, off := 0, 0
	for i+4 <= len(dst) && off+9 <= len(src) {
		w4 := binary.LittleEndian.Uint32(src[off:])
		if w4&msb4 == 0 {
			dst[i+0] = w4 & 0x7F
			dst[i+1] = w4 >> 8 & 0x7F
			dst[i+2] = w4 >> 16 & 0x7F
			dst[i+3] = w4 >> 24
			i += 4
			off += 4

			continue
		}

		for j := 0; j < 4; j++ {
			if off+9 > len(src) {
				return i, off
			}
			b0 := src[off]
			n := int(layout.TotalLen[b0])
			if n > 5 {
				return i, off
			}
			w := binary.LittleEndian.Uint64(src[off+1:])
			dst[i] = uint32(b0&headData[b0]) | uint32((w&headContMask[b0])<<headShift[b0])
			i++
			off += n
		}
	}

	return i, off
}
