package vlen

import (
	"github.com/vlen-go/vlen/internal/layout"
	"lukechampine.com/uint128"
)

// Zigzag64 maps a signed value to an unsigned one with the sign carried in
// bit 0, so values of small magnitude encode short regardless of sign:
//
//	0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4, ...
//
// Values in [-64, 63] fit a single encoded byte.
func Zigzag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// Unzigzag64 inverts Zigzag64.
func Unzigzag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// Zigzag8 is Zigzag64 at 8 bits.
func Zigzag8(v int8) uint8 {
	return uint8(v<<1) ^ uint8(v>>7)
}

// Unzigzag8 inverts Zigzag8.
func Unzigzag8(u uint8) int8 {
	return int8(u>>1) ^ -int8(u&1)
}

// Zigzag16 is Zigzag64 at 16 bits.
func Zigzag16(v int16) uint16 {
	return uint16(v<<1) ^ uint16(v>>15)
}

// Unzigzag16 inverts Zigzag16.
func Unzigzag16(u uint16) int16 {
	return int16(u>>1) ^ -int16(u&1)
}

// Zigzag32 is Zigzag64 at 32 bits.
func Zigzag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// Unzigzag32 inverts Zigzag32.
func Unzigzag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// Zigzag128 is Zigzag64 for a 128-bit two's-complement pattern held in a
// uint128.Uint128.
func Zigzag128(v uint128.Uint128) uint128.Uint128 {
	sign := -(v.Hi >> 63)

	return v.Lsh(1).Xor(uint128.New(sign, sign))
}

// Unzigzag128 inverts Zigzag128.
func Unzigzag128(u uint128.Uint128) uint128.Uint128 {
	sign := -(u.Lo & 1)

	return u.Rsh(1).Xor(uint128.New(sign, sign))
}

// EncodeInt64 writes the canonical encoding of Zigzag64(v); see
// EncodeUint64 for the buffer contract.
func EncodeInt64(dst []byte, v int64) (int, error) {
	return EncodeUint64(dst, Zigzag64(v))
}

// EncodeInt8 encodes an 8-bit signed value; see EncodeInt64.
func EncodeInt8(dst []byte, v int8) (int, error) {
	return EncodeUint64(dst, uint64(Zigzag8(v)))
}

// EncodeInt16 encodes a 16-bit signed value; see EncodeInt64.
func EncodeInt16(dst []byte, v int16) (int, error) {
	return EncodeUint64(dst, uint64(Zigzag16(v)))
}

// EncodeInt32 encodes a 32-bit signed value; see EncodeInt64.
func EncodeInt32(dst []byte, v int32) (int, error) {
	return EncodeUint64(dst, uint64(Zigzag32(v)))
}

// EncodeInt128 encodes a 128-bit two's-complement pattern; see EncodeInt64.
func EncodeInt128(dst []byte, v uint128.Uint128) (int, error) {
	return EncodeUint128(dst, Zigzag128(v))
}

// DecodeInt64 reads one zigzag-encoded signed value; see DecodeUint64 for
// the consumption and error rules.
func DecodeInt64(src []byte) (int64, int, error) {
	u, n, err := DecodeUint64(src)
	if err != nil {
		return 0, 0, err
	}

	return Unzigzag64(u), n, nil
}

// DecodeInt8 decodes into 8 bits; see DecodeInt64.
func DecodeInt8(src []byte) (int8, int, error) {
	u, n, err := DecodeUint8(src)
	if err != nil {
		return 0, 0, err
	}

	return Unzigzag8(u), n, nil
}

// DecodeInt16 decodes into 16 bits; see DecodeInt64.
func DecodeInt16(src []byte) (int16, int, error) {
	u, n, err := DecodeUint16(src)
	if err != nil {
		return 0, 0, err
	}

	return Unzigzag16(u), n, nil
}

// DecodeInt32 decodes into 32 bits; see DecodeInt64.
func DecodeInt32(src []byte) (int32, int, error) {
	u, n, err := DecodeUint32(src)
	if err != nil {
		return 0, 0, err
	}

	return Unzigzag32(u), n, nil
}

// DecodeInt128 decodes a 128-bit two's-complement pattern; see DecodeInt64.
func DecodeInt128(src []byte) (uint128.Uint128, int, error) {
	u, n, err := DecodeUint128(src)
	if err != nil {
		return uint128.Zero, 0, err
	}

	return Unzigzag128(u), n, nil
}

// AppendInt64 appends the canonical encoding of Zigzag64(v) to dst.
func AppendInt64(dst []byte, v int64) []byte {
	return AppendUint64(dst, Zigzag64(v))
}

// AppendInt8 appends an 8-bit signed value; see AppendInt64.
func AppendInt8(dst []byte, v int8) []byte {
	return AppendUint64(dst, uint64(Zigzag8(v)))
}

// AppendInt16 appends a 16-bit signed value; see AppendInt64.
func AppendInt16(dst []byte, v int16) []byte {
	return AppendUint64(dst, uint64(Zigzag16(v)))
}

// AppendInt32 appends a 32-bit signed value; see AppendInt64.
func AppendInt32(dst []byte, v int32) []byte {
	return AppendUint64(dst, uint64(Zigzag32(v)))
}

// AppendInt128 appends a 128-bit two's-complement pattern; see AppendInt64.
func AppendInt128(dst []byte, v uint128.Uint128) []byte {
	return AppendUint128(dst, Zigzag128(v))
}

// EncodedSizeInt64 returns the canonical size of the zigzag encoding of v.
func EncodedSizeInt64(v int64) int {
	return layout.Size64(Zigzag64(v))
}

// EncodedSizeInt8 is EncodedSizeInt64 at 8 bits.
func EncodedSizeInt8(v int8) int {
	return layout.Size32(uint32(Zigzag8(v)))
}

// EncodedSizeInt16 is EncodedSizeInt64 at 16 bits.
func EncodedSizeInt16(v int16) int {
	return layout.Size32(uint32(Zigzag16(v)))
}

// EncodedSizeInt32 is EncodedSizeInt64 at 32 bits.
func EncodedSizeInt32(v int32) int {
	return layout.Size32(Zigzag32(v))
}

// EncodedSizeInt128 is EncodedSizeInt64 for a 128-bit pattern.
func EncodedSizeInt128(v uint128.Uint128) int {
	z := Zigzag128(v)

	return layout.Size128(z.Lo, z.Hi)
}
