package vlen

import (
	"fmt"

	"github.com/vlen-go/vlen/errs"
	"github.com/vlen-go/vlen/internal/layout"
	"github.com/vlen-go/vlen/internal/vec"
)

// bulkChunk is the scratch size the mapped bulk paths (signed, float) use
// to feed the unsigned kernels without allocating.
const bulkChunk = 64

// EncodeUint64s writes the concatenated canonical encodings of values at
// the start of dst.
//
// The total size is computed up front; a short destination fails with
// errs.ErrBufferTooSmall before anything is written. On success the byte
// count equals EncodedSizeUint64s(values).
//
// The output is byte-identical to encoding each value with EncodeUint64 in
// sequence, at every SIMDLevel.
//
// Parameters:
//   - dst: destination buffer, at least EncodedSizeUint64s(values) long
//   - values: values to encode, in order
//
// Returns:
//   - int: total bytes written
//   - error: errs.ErrBufferTooSmall if dst cannot hold the whole run
func EncodeUint64s(dst []byte, values []uint64) (int, error) {
	total := EncodedSizeUint64s(values)
	if len(dst) < total {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, total, len(dst))
	}

	return encodeUint64s(dst, values), nil
}

// encodeUint64s assumes dst has been size-checked.
func encodeUint64s(dst []byte, values []uint64) int {
	off := 0
	if vec.Active() == vec.LevelScalar {
		for _, v := range values {
			n := layout.Size64(v)
			putUint64(dst[off:], v, n)
			off += n
		}

		return off
	}

	for i := 0; i < len(values); {
		nv, nb := vec.EncodeU64Block(dst[off:], values[i:])
		i += nv
		off += nb
		if i == len(values) {
			break
		}
		// Kernel stopped at the tail or a headroom limit: emit one value
		// exactly, then resume the kernel.
		v := values[i]
		n := layout.Size64(v)
		putUint64(dst[off:], v, n)
		i++
		off += n
	}

	return off
}

// DecodeUint64s decodes exactly len(dst) values from src.
//
// Returns the number of values decoded, the bytes consumed, and the first
// error encountered. On error, dst[:valuesDecoded] holds the values decoded
// so far and the byte count covers exactly those values; errs.ErrTruncatedInput
// means src ended before len(dst) values, errs.ErrOverflow that a value did
// not fit 64 bits.
//
// Accepts exactly the encodings DecodeUint64 accepts, over-long forms
// included, at every SIMDLevel.
func DecodeUint64s(dst []uint64, src []byte) (int, int, error) {
	i, off := 0, 0
	useKernel := vec.Active() != vec.LevelScalar
	for i < len(dst) {
		if useKernel {
			nv, nb := vec.DecodeU64Block(dst[i:], src[off:])
			i += nv
			off += nb
			if i == len(dst) {
				break
			}
		}
		v, n, err := DecodeUint64(src[off:])
		if err != nil {
			return i, off, err
		}
		dst[i] = v
		i++
		off += n
	}

	return len(dst), off, nil
}

// EncodeUint32s is EncodeUint64s for 32-bit values.
func EncodeUint32s(dst []byte, values []uint32) (int, error) {
	total := EncodedSizeUint32s(values)
	if len(dst) < total {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, total, len(dst))
	}

	off := 0
	if vec.Active() == vec.LevelScalar {
		for _, v := range values {
			n := layout.Size32(v)
			putUint64(dst[off:], uint64(v), n)
			off += n
		}

		return off, nil
	}

	for i := 0; i < len(values); {
		nv, nb := vec.EncodeU32Block(dst[off:], values[i:])
		i += nv
		off += nb
		if i == len(values) {
			break
		}
		v := values[i]
		n := layout.Size32(v)
		putUint64(dst[off:], uint64(v), n)
		i++
		off += n
	}

	return off, nil
}

// DecodeUint32s is DecodeUint64s for 32-bit values; values that need more
// than 32 bits stop it with errs.ErrOverflow.
func DecodeUint32s(dst []uint32, src []byte) (int, int, error) {
	i, off := 0, 0
	useKernel := vec.Active() != vec.LevelScalar
	for i < len(dst) {
		if useKernel {
			nv, nb := vec.DecodeU32Block(dst[i:], src[off:])
			i += nv
			off += nb
			if i == len(dst) {
				break
			}
		}
		v, n, err := DecodeUint32(src[off:])
		if err != nil {
			return i, off, err
		}
		dst[i] = v
		i++
		off += n
	}

	return len(dst), off, nil
}

// EncodeInt64s bulk-encodes signed values through Zigzag64, chunking the
// mapping through a stack scratch so the unsigned kernels do the work with
// no allocation.
func EncodeInt64s(dst []byte, values []int64) (int, error) {
	total := EncodedSizeInt64s(values)
	if len(dst) < total {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, total, len(dst))
	}

	var tmp [bulkChunk]uint64
	off := 0
	for base := 0; base < len(values); base += bulkChunk {
		c := min(bulkChunk, len(values)-base)
		for j := 0; j < c; j++ {
			tmp[j] = Zigzag64(values[base+j])
		}
		off += encodeUint64s(dst[off:], tmp[:c])
	}

	return off, nil
}

// DecodeInt64s is the inverse of EncodeInt64s, with the DecodeUint64s
// progress and error contract.
func DecodeInt64s(dst []int64, src []byte) (int, int, error) {
	var tmp [bulkChunk]uint64
	i, off := 0, 0
	for i < len(dst) {
		c := min(bulkChunk, len(dst)-i)
		nv, nb, err := DecodeUint64s(tmp[:c], src[off:])
		for j := 0; j < nv; j++ {
			dst[i+j] = Unzigzag64(tmp[j])
		}
		i += nv
		off += nb
		if err != nil {
			return i, off, err
		}
	}

	return len(dst), off, nil
}

// EncodeFloat64s bulk-encodes floats through Float64ToUint64; see
// EncodeInt64s for the mechanics.
func EncodeFloat64s(dst []byte, values []float64) (int, error) {
	total := EncodedSizeFloat64s(values)
	if len(dst) < total {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, total, len(dst))
	}

	var tmp [bulkChunk]uint64
	off := 0
	for base := 0; base < len(values); base += bulkChunk {
		c := min(bulkChunk, len(values)-base)
		for j := 0; j < c; j++ {
			tmp[j] = Float64ToUint64(values[base+j])
		}
		off += encodeUint64s(dst[off:], tmp[:c])
	}

	return off, nil
}

// DecodeFloat64s is the inverse of EncodeFloat64s, with the DecodeUint64s
// progress and error contract.
func DecodeFloat64s(dst []float64, src []byte) (int, int, error) {
	var tmp [bulkChunk]uint64
	i, off := 0, 0
	for i < len(dst) {
		c := min(bulkChunk, len(dst)-i)
		nv, nb, err := DecodeUint64s(tmp[:c], src[off:])
		for j := 0; j < nv; j++ {
			dst[i+j] = Uint64ToFloat64(tmp[j])
		}
		i += nv
		off += nb
		if err != nil {
			return i, off, err
		}
	}

	return len(dst), off, nil
}

// EncodedSizeUint64s returns the total canonical encoded size of values.
func EncodedSizeUint64s(values []uint64) int {
	total := 0
	for _, v := range values {
		total += layout.Size64(v)
	}

	return total
}

// EncodedSizeUint32s returns the total canonical encoded size of values.
func EncodedSizeUint32s(values []uint32) int {
	total := 0
	for _, v := range values {
		total += layout.Size32(v)
	}

	return total
}

// EncodedSizeInt64s returns the total canonical size of the zigzag
// encodings of values.
func EncodedSizeInt64s(values []int64) int {
	total := 0
	for _, v := range values {
		total += layout.Size64(Zigzag64(v))
	}

	return total
}

// EncodedSizeFloat64s returns the total canonical size of the float
// mappings of values.
func EncodedSizeFloat64s(values []float64) int {
	total := 0
	for _, v := range values {
		total += layout.Size64(Float64ToUint64(v))
	}

	return total
}
