package vlen

import (
	"encoding/binary"
	"fmt"

	"github.com/vlen-go/vlen/errs"
	"github.com/vlen-go/vlen/internal/layout"
	"lukechampine.com/uint128"
)

// EncodeUint64 writes the canonical encoding of v at the start of dst and
// returns the number of bytes written.
//
// The destination must hold the exact encoded size of the value, never more
// than MaxLen64. Use EncodedSizeUint64 to size it tightly, or a MaxLen64
// buffer to fit any value.
//
// Parameters:
//   - dst: destination buffer
//   - v: value to encode
//
// Returns:
//   - int: bytes written, in [1, MaxLen64]
//   - error: errs.ErrBufferTooSmall if dst is shorter than the encoding
//
// Example:
//
//	buf := make([]byte, vlen.MaxLen64)
//	n, _ := vlen.EncodeUint64(buf, 300)
//	// buf[:n] is [0xAC, 0x04]
func EncodeUint64(dst []byte, v uint64) (int, error) {
	n := layout.Size64(v)
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, n, len(dst))
	}
	putUint64(dst, v, n)

	return n, nil
}

// EncodeUint8 encodes an 8-bit value; see EncodeUint64.
func EncodeUint8(dst []byte, v uint8) (int, error) {
	return EncodeUint64(dst, uint64(v))
}

// EncodeUint16 encodes a 16-bit value; see EncodeUint64.
func EncodeUint16(dst []byte, v uint16) (int, error) {
	return EncodeUint64(dst, uint64(v))
}

// EncodeUint32 encodes a 32-bit value; see EncodeUint64.
func EncodeUint32(dst []byte, v uint32) (int, error) {
	return EncodeUint64(dst, uint64(v))
}

// EncodeUint128 writes the canonical encoding of v at the start of dst and
// returns the number of bytes written, at most MaxLen128.
//
// Returns errs.ErrBufferTooSmall if dst is shorter than the exact encoded
// size of the value.
func EncodeUint128(dst []byte, v uint128.Uint128) (int, error) {
	n := layout.Size128(v.Lo, v.Hi)
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, n, len(dst))
	}
	if v.Hi == 0 {
		putUint64(dst, v.Lo, n)

		return n, nil
	}

	dst[0] = layout.Length | byte(n-2)
	var tmp [16]byte
	v.PutBytes(tmp[:])
	copy(dst[1:n], tmp[:n-1])

	return n, nil
}

// putUint64 writes the encoding of v without bounds checks. n must equal
// layout.Size64(v) and dst must hold n bytes.
func putUint64(dst []byte, v uint64, n int) {
	switch n {
	case 1:
		dst[0] = byte(v)
	case 2:
		dst[0] = layout.Prefix1 | byte(v)&0x3F
		dst[1] = byte(v >> 6)
	case 3:
		dst[0] = layout.Prefix2 | byte(v)&0x1F
		dst[1] = byte(v >> 5)
		dst[2] = byte(v >> 13)
	case 4:
		dst[0] = layout.Prefix3 | byte(v)&0x0F
		dst[1] = byte(v >> 4)
		dst[2] = byte(v >> 12)
		dst[3] = byte(v >> 20)
	default:
		dst[0] = layout.Length | byte(n-2)
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v)
		copy(dst[1:n], tmp[:n-1])
	}
}

// AppendUint64 appends the canonical encoding of v to dst and returns the
// extended slice, growing it as needed.
//
// Example:
//
//	var buf []byte
//	for _, v := range values {
//	    buf = vlen.AppendUint64(buf, v)
//	}
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [MaxLen64]byte
	n := layout.Size64(v)
	putUint64(buf[:], v, n)

	return append(dst, buf[:n]...)
}

// AppendUint8 appends the encoding of an 8-bit value; see AppendUint64.
func AppendUint8(dst []byte, v uint8) []byte {
	return AppendUint64(dst, uint64(v))
}

// AppendUint16 appends the encoding of a 16-bit value; see AppendUint64.
func AppendUint16(dst []byte, v uint16) []byte {
	return AppendUint64(dst, uint64(v))
}

// AppendUint32 appends the encoding of a 32-bit value; see AppendUint64.
func AppendUint32(dst []byte, v uint32) []byte {
	return AppendUint64(dst, uint64(v))
}

// AppendUint128 appends the canonical encoding of v to dst and returns the
// extended slice.
func AppendUint128(dst []byte, v uint128.Uint128) []byte {
	var buf [MaxLen128]byte
	n, _ := EncodeUint128(buf[:], v)

	return append(dst, buf[:n]...)
}
