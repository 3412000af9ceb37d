package vlen

import (
	"math"
	"math/bits"

	"github.com/vlen-go/vlen/internal/layout"
)

// Float64ToUint64 maps a float to the unsigned integer the codec stores for
// it: the IEEE-754 bits with bytes reversed, which moves the sign and
// exponent into the low byte. Common values then encode short: 0.0 is one
// byte, and whole numbers and powers of two keep their trailing zero
// mantissa bytes out of the encoding entirely.
//
// The mapping is a bijection on bit patterns; NaN payloads, infinities and
// negative zero survive the round trip exactly.
func Float64ToUint64(f float64) uint64 {
	return bits.ReverseBytes64(math.Float64bits(f))
}

// Uint64ToFloat64 inverts Float64ToUint64.
func Uint64ToFloat64(u uint64) float64 {
	return math.Float64frombits(bits.ReverseBytes64(u))
}

// Float32ToUint32 is Float64ToUint64 at 32 bits.
func Float32ToUint32(f float32) uint32 {
	return bits.ReverseBytes32(math.Float32bits(f))
}

// Uint32ToFloat32 inverts Float32ToUint32.
func Uint32ToFloat32(u uint32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(u))
}

// EncodeFloat64 writes the canonical encoding of Float64ToUint64(f); see
// EncodeUint64 for the buffer contract.
func EncodeFloat64(dst []byte, f float64) (int, error) {
	return EncodeUint64(dst, Float64ToUint64(f))
}

// EncodeFloat32 encodes a 32-bit float; see EncodeFloat64.
func EncodeFloat32(dst []byte, f float32) (int, error) {
	return EncodeUint64(dst, uint64(Float32ToUint32(f)))
}

// DecodeFloat64 reads one float-mapped value; see DecodeUint64 for the
// consumption and error rules.
func DecodeFloat64(src []byte) (float64, int, error) {
	u, n, err := DecodeUint64(src)
	if err != nil {
		return 0, 0, err
	}

	return Uint64ToFloat64(u), n, nil
}

// DecodeFloat32 decodes a 32-bit float; see DecodeFloat64.
func DecodeFloat32(src []byte) (float32, int, error) {
	u, n, err := DecodeUint32(src)
	if err != nil {
		return 0, 0, err
	}

	return Uint32ToFloat32(u), n, nil
}

// AppendFloat64 appends the canonical encoding of Float64ToUint64(f) to dst.
func AppendFloat64(dst []byte, f float64) []byte {
	return AppendUint64(dst, Float64ToUint64(f))
}

// AppendFloat32 appends a 32-bit float; see AppendFloat64.
func AppendFloat32(dst []byte, f float32) []byte {
	return AppendUint64(dst, uint64(Float32ToUint32(f)))
}

// EncodedSizeFloat64 returns the canonical size of the float mapping of f.
func EncodedSizeFloat64(f float64) int {
	return layout.Size64(Float64ToUint64(f))
}

// EncodedSizeFloat32 is EncodedSizeFloat64 at 32 bits.
func EncodedSizeFloat32(f float32) int {
	return layout.Size32(Float32ToUint32(f))
}
