package vlen

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vlen-go/vlen/errs"
	"github.com/vlen-go/vlen/internal/layout"
	"lukechampine.com/uint128"
)

// DecodeUint64 reads one encoded value from the start of src.
//
// The number of bytes consumed is the length declared by the first byte,
// including for over-long encodings; a canonicality check is deliberately
// not performed. Decoding stops at the first value, so src may hold a
// longer stream.
//
// Parameters:
//   - src: buffer holding at least one encoded value
//
// Returns:
//   - uint64: decoded value
//   - int: bytes consumed, in [1, MaxLen128]
//   - error: errs.ErrTruncatedInput if src ends before the declared length,
//     errs.ErrOverflow if the value does not fit in 64 bits
//
// Example:
//
//	v, n, err := vlen.DecodeUint64([]byte{0xDE, 0xE6, 0x55})
//	// v == 0xABCDE, n == 3, err == nil
func DecodeUint64(src []byte) (uint64, int, error) {
	lo, hi, n, err := decodeAny(src)
	if err != nil {
		return 0, 0, err
	}
	if hi != 0 {
		return 0, 0, fmt.Errorf("%w: encoded value needs more than 64 bits", errs.ErrOverflow)
	}

	return lo, n, nil
}

// DecodeUint8 decodes into 8 bits; see DecodeUint64.
func DecodeUint8(src []byte) (uint8, int, error) {
	lo, hi, n, err := decodeAny(src)
	if err != nil {
		return 0, 0, err
	}
	if hi != 0 || lo > math.MaxUint8 {
		return 0, 0, fmt.Errorf("%w: encoded value needs more than 8 bits", errs.ErrOverflow)
	}

	return uint8(lo), n, nil
}

// DecodeUint16 decodes into 16 bits; see DecodeUint64.
func DecodeUint16(src []byte) (uint16, int, error) {
	lo, hi, n, err := decodeAny(src)
	if err != nil {
		return 0, 0, err
	}
	if hi != 0 || lo > math.MaxUint16 {
		return 0, 0, fmt.Errorf("%w: encoded value needs more than 16 bits", errs.ErrOverflow)
	}

	return uint16(lo), n, nil
}

// DecodeUint32 decodes into 32 bits; see DecodeUint64.
func DecodeUint32(src []byte) (uint32, int, error) {
	lo, hi, n, err := decodeAny(src)
	if err != nil {
		return 0, 0, err
	}
	if hi != 0 || lo > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: encoded value needs more than 32 bits", errs.ErrOverflow)
	}

	return uint32(lo), n, nil
}

// DecodeUint128 reads one encoded value of up to 128 bits from the start of
// src. See DecodeUint64 for the consumption rules; ErrOverflow cannot occur
// at this width.
func DecodeUint128(src []byte) (uint128.Uint128, int, error) {
	lo, hi, n, err := decodeAny(src)
	if err != nil {
		return uint128.Zero, 0, err
	}

	return uint128.New(lo, hi), n, nil
}

// decodeAny decodes one value of any width into 128-bit halves. It is the
// single reconstruction path behind every width-specific decoder.
func decodeAny(src []byte) (lo, hi uint64, n int, err error) {
	if len(src) == 0 {
		return 0, 0, 0, errs.ErrTruncatedInput
	}

	b0 := src[0]
	n = int(layout.TotalLen[b0])
	if len(src) < n {
		return 0, 0, 0, fmt.Errorf("%w: first byte %#02x declares %d bytes, have %d",
			errs.ErrTruncatedInput, b0, n, len(src))
	}

	switch {
	case b0 < layout.Prefix1:
		lo = uint64(b0)
	case b0 < layout.Prefix2:
		lo = uint64(b0&0x3F) | uint64(src[1])<<6
	case b0 < layout.Prefix3:
		lo = uint64(b0&0x1F) | (uint64(src[1])|uint64(src[2])<<8)<<5
	case b0 < layout.Length:
		lo = uint64(b0&0x0F) | (uint64(src[1])|uint64(src[2])<<8|uint64(src[3])<<16)<<4
	default:
		// Length-prefixed: zero-extend payloads shorter than 16 bytes, so
		// over-long forms with padded high bytes come out the same.
		var tmp [16]byte
		copy(tmp[:], src[1:n])
		lo = binary.LittleEndian.Uint64(tmp[:8])
		hi = binary.LittleEndian.Uint64(tmp[8:])
	}

	return lo, hi, n, nil
}
