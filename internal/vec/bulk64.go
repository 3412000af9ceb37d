package vec

import (
	"encoding/binary"

	"github.com/vlen-go/vlen/internal/layout"
)

// encodeU64x4 encodes src into dst in blocks of four values, packing blocks
// of single-byte values into one store. Worst-case headroom per value is 9
// bytes (length-prefixed with an 8-byte payload). Returns (values encoded,
// bytes written).
func encodeU64x4(dst []byte, src []uint64) (int, int) {
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
			n := layout.Size64(v)
			dst[off] = encMarker[n] | byte(v)&encData[n]
			binary.LittleEndian.PutUint64(dst[off+1:], v>>encShift[n])
			i++
			off += n
		}
	}

	return i, off
}

// encodeU64x2 is the 2-lane variant of encodeU64x4. Blocks this narrow gain
// nothing from a packed fast path, so every value takes the branchless
// single-store step.
func encodeU64x2(dst []byte, src []uint64) (int, int) {
	i, off := 0, 0
	for i+2 <= len(src) && off+9 <= len(dst) {
		for j := 0; j < 2; j++ {
			if off+9 > len(dst) {
				return i, off
			}
			v := src[i]
			n := layout.Size64(v)
			dst[off] = encMarker[n] | byte(v)&encData[n]
			binary.LittleEndian.PutUint64(dst[off+1:], v>>encShift[n])
			i++
			off += n
		}
	}

	return i, off
}

// decodeU64x4 decodes values from src into dst in blocks of four. Every
// form up to 9 total bytes is reconstructed branchlessly from the
// first-byte tables; longer length-prefixed forms (over-long encodings with
// payloads past 8 bytes) are left to the scalar decoder. Returns (values
// decoded, bytes read).
func decodeU64x4(dst []uint64, src []byte) (int, int) {
	i, off := 0, 0
	for i+4 <= len(dst) && off+9 <= len(src) {
		w4 := binary.LittleEndian.Uint32(src[off:])
		if w4&msb4 == 0 {
			dst[i+0] = uint64(w4 & 0x7F)
			dst[i+1] = uint64(w4 >> 8 & 0x7F)
			dst[i+2] = uint64(w4 >> 16 & 0x7F)
			dst[i+3] = uint64(w4 >> 24)
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
			if n > 9 {
				return i, off
			}
			w := binary.LittleEndian.Uint64(src[off+1:])
			dst[i] = uint64(b0&headData[b0]) | (w&headContMask[b0])<<headShift[b0]
			i++
			off += n
		}
	}

	return i, off
}

// decodeU64x2 is the 2-lane variant of decodeU64x4.
func decodeU64x2(dst []uint64, src []byte) (int, int) {
	i, off := 0, 0
	for i+2 <= len(dst) && off+9 <= len(src) {
		for j := 0; j < 2; j++ {
			if off+9 > len(src) {
				return i, off
			}
			b0 := src[off]
			n := int(layout.TotalLen[b0])
			if n > 9 {
				return i, off
			}
			w := binary.LittleEndian.Uint64(src[off+1:])
			dst[i] = uint64(b0&headData[b0]) | (w&headContMask[b0])<<headShift[b0]
			i++
			off += n
		}
	}

	return i, off
}
