// Package vlen implements a variable-length binary encoding for unsigned
// integers up to 128 bits, with zigzag and byte-reversed-float mappings
// layered on top for signed integers and floating-point values.
//
// Encoded values occupy 1 to 17 bytes; smaller values take fewer bytes, and
// the first byte alone determines the total length. All multi-byte data is
// little-endian.
//
// # Encoding layout
//
// Values below 2^7 are a single byte holding the value. Values below 2^28
// use a prefix-varint form: k leading one bits in the first byte (k in
// 1..3) followed by a zero bit, the value's low 7-k bits, and k
// little-endian continuation bytes. Larger values are length-prefixed: a
// first byte 0xF0|(n-1) followed by the value's low n bytes little-endian,
// with n in 4..16.
//
// Encoders always emit the canonical (shortest) form. Decoders accept any
// well-formed encoding, including over-long forms, and return the declared
// length as bytes consumed; they never enforce canonicality.
//
// # Usage
//
//	buf := make([]byte, vlen.MaxLen64)
//	n, err := vlen.EncodeUint64(buf, 703710)
//	if err != nil {
//	    // dst too small
//	}
//	v, n, err := vlen.DecodeUint64(buf[:n])
//
// Bulk slice operations (EncodeUint64s, DecodeUint32s, ...) run on block
// kernels selected per CPU at startup and produce output byte-identical to
// the single-value functions. Set VLEN_NO_SIMD=1 to force the scalar path.
//
// All errors wrap the sentinels in the errs package and can be classified
// with errors.Is.
package vlen

import (
	"github.com/vlen-go/vlen/internal/layout"
	"github.com/vlen-go/vlen/internal/vec"
)

// Maximum encoded length per integer width, including the first byte.
const (
	MaxLen8   = layout.MaxLen8
	MaxLen16  = layout.MaxLen16
	MaxLen32  = layout.MaxLen32
	MaxLen64  = layout.MaxLen64
	MaxLen128 = layout.MaxLen128

	// MaxLen is the worst case across all widths.
	MaxLen = MaxLen128
)

// EncodedLen returns the total encoded length declared by the first byte of
// an encoding, in [1, 17]. It is defined for all byte values and lets
// callers that frame their own reads (records split across buffers, memory
// mapped files) find value boundaries without decoding.
func EncodedLen(first byte) int {
	return int(layout.TotalLen[first])
}

// SIMDLevel reports the bulk path selected at startup: "scalar", "simd128"
// or "simd256". It is fixed for the lifetime of the process; the
// VLEN_NO_SIMD environment variable forces "scalar" when set to a true
// value.
func SIMDLevel() string {
	return vec.Active().String()
}
