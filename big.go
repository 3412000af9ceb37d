package vlen

import (
	"fmt"
	"math/big"

	"github.com/vlen-go/vlen/errs"
	"github.com/vlen-go/vlen/internal/layout"
	"lukechampine.com/uint128"
)

// EncodeBig writes the canonical encoding of a non-negative
// arbitrary-precision value. It is the entry point for dynamically-typed
// callers: the fixed-width functions cannot overflow the format, but a
// big.Int can.
//
// Returns errs.ErrValueTooLarge for negative values and for values of 129
// bits or more, and errs.ErrBufferTooSmall per EncodeUint64.
func EncodeBig(dst []byte, v *big.Int) (int, error) {
	u, err := bigToUint128(v)
	if err != nil {
		return 0, err
	}

	return EncodeUint128(dst, u)
}

// DecodeBig reads one encoded value of up to 128 bits into a fresh big.Int;
// see DecodeUint64 for the consumption and error rules.
func DecodeBig(src []byte) (*big.Int, int, error) {
	u, n, err := DecodeUint128(src)
	if err != nil {
		return nil, 0, err
	}

	return u.Big(), n, nil
}

// AppendBig appends the canonical encoding of v to dst. On error dst is
// returned unchanged.
func AppendBig(dst []byte, v *big.Int) ([]byte, error) {
	u, err := bigToUint128(v)
	if err != nil {
		return dst, err
	}

	return AppendUint128(dst, u), nil
}

// EncodedSizeBig returns the exact canonical size of v, with the same range
// checks as EncodeBig.
func EncodedSizeBig(v *big.Int) (int, error) {
	u, err := bigToUint128(v)
	if err != nil {
		return 0, err
	}

	return layout.Size128(u.Lo, u.Hi), nil
}

func bigToUint128(v *big.Int) (uint128.Uint128, error) {
	if v.Sign() < 0 {
		return uint128.Zero, fmt.Errorf("%w: negative value %s", errs.ErrValueTooLarge, v)
	}
	if v.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%w: %d-bit value exceeds 128 bits", errs.ErrValueTooLarge, v.BitLen())
	}

	return uint128.FromBig(v), nil
}
