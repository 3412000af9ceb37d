package vlen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlen-go/vlen/errs"
)

// bulkCorpora returns value sets that stress every tier mix the kernels
// handle differently: packed single-byte runs, uniform wide runs, tier
// alternation, and random spreads.
func bulkCorpora(t *testing.T) map[string][]uint64 {
	t.Helper()
	rng := rand.New(rand.NewSource(1234))

	small := make([]uint64, 300)
	for i := range small {
		small[i] = rng.Uint64() % 0x80
	}
	wide := make([]uint64, 300)
	for i := range wide {
		wide[i] = math.MaxUint64 - rng.Uint64()%1000
	}
	alternating := make([]uint64, 301)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = uint64(i) % 0x80
		} else {
			alternating[i] = math.MaxUint64 - uint64(i)
		}
	}
	spread := make([]uint64, 1000)
	for i := range spread {
		spread[i] = rng.Uint64() >> uint(rng.Intn(64))
	}
	ladder := make([]uint64, 0, 130)
	for bit := 0; bit < 64; bit++ {
		ladder = append(ladder, 1<<uint(bit), 1<<uint(bit)-1)
	}

	return map[string][]uint64{
		"empty":       nil,
		"single":      {0xABCDE},
		"small":       small,
		"wide":        wide,
		"alternating": alternating,
		"spread":      spread,
		"ladder":      ladder,
	}
}

func TestEncodeUint64sMatchesScalar(t *testing.T) {
	t.Logf("active level: %s", SIMDLevel())
	for name, values := range bulkCorpora(t) {
		t.Run(name, func(t *testing.T) {
			var want []byte
			for _, v := range values {
				want = AppendUint64(want, v)
			}

			dst := make([]byte, EncodedSizeUint64s(values))
			n, err := EncodeUint64s(dst, values)
			require.NoError(t, err)
			require.Equal(t, len(want), n)
			require.Equal(t, want, dst[:n])
		})
	}
}

func TestDecodeUint64sRoundTrip(t *testing.T) {
	for name, values := range bulkCorpora(t) {
		t.Run(name, func(t *testing.T) {
			var enc []byte
			for _, v := range values {
				enc = AppendUint64(enc, v)
			}

			got := make([]uint64, len(values))
			nv, nb, err := DecodeUint64s(got, enc)
			require.NoError(t, err)
			require.Equal(t, len(values), nv)
			require.Equal(t, len(enc), nb)
			if len(values) > 0 {
				require.Equal(t, values, got)
			}
		})
	}
}

// Over-long forms never come out of the encoder, so this stream forces the
// kernels to hand values back to the scalar path mid-run.
func TestDecodeUint64sOverLongStream(t *testing.T) {
	values := []uint64{5, 0x80, 0xABCDE, 1, 0, 0x12345678, 0x7F}
	var enc []byte
	for i, v := range values {
		switch i % 3 {
		case 0:
			enc = append(enc, lengthForm(9, v, 0)...)
		case 1:
			enc = AppendUint64(enc, v)
		default:
			enc = append(enc, lengthForm(16, v, 0)...)
		}
	}

	got := make([]uint64, len(values))
	nv, nb, err := DecodeUint64s(got, enc)
	require.NoError(t, err)
	require.Equal(t, len(values), nv)
	require.Equal(t, len(enc), nb)
	require.Equal(t, values, got)
}

func TestDecodeUint64sPartialProgress(t *testing.T) {
	values := []uint64{1, 0x4000, 0xABCDE, math.MaxUint64, 0x7F}
	var enc []byte
	for _, v := range values {
		enc = AppendUint64(enc, v)
	}

	t.Run("truncated", func(t *testing.T) {
		// Cut inside the fourth value: three complete values remain.
		cut := EncodedSizeUint64s(values[:3]) + 2
		got := make([]uint64, len(values))
		nv, nb, err := DecodeUint64s(got, enc[:cut])
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, 3, nv)
		require.Equal(t, EncodedSizeUint64s(values[:3]), nb)
		require.Equal(t, values[:3], got[:nv])
	})

	t.Run("overflow", func(t *testing.T) {
		bad := AppendUint64(nil, 7)
		bad = append(bad, lengthForm(9, 0, 1)...) // 2^64
		bad = AppendUint64(bad, 9)

		got := make([]uint64, 3)
		nv, nb, err := DecodeUint64s(got, bad)
		require.ErrorIs(t, err, errs.ErrOverflow)
		require.Equal(t, 1, nv)
		require.Equal(t, 1, nb)
		require.Equal(t, uint64(7), got[0])
	})

	t.Run("short dst stops early", func(t *testing.T) {
		got := make([]uint64, 2)
		nv, nb, err := DecodeUint64s(got, enc)
		require.NoError(t, err)
		require.Equal(t, 2, nv)
		require.Equal(t, EncodedSizeUint64s(values[:2]), nb)
		require.Equal(t, values[:2], got)
	})
}

func TestEncodeUint64sBufferTooSmall(t *testing.T) {
	values := []uint64{1, 0x4000, math.MaxUint64}
	size := EncodedSizeUint64s(values)

	dst := make([]byte, size-1)
	n, err := EncodeUint64s(dst, values)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	require.Zero(t, n)
	for _, b := range dst {
		require.Zero(t, b, "failed encode must not touch dst")
	}

	n, err = EncodeUint64s(make([]byte, size), values)
	require.NoError(t, err)
	require.Equal(t, size, n)
}

func TestUint32sBulk(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	values := make([]uint32, 800)
	for i := range values {
		values[i] = uint32(rng.Uint64() >> uint(32+rng.Intn(32)))
	}

	var want []byte
	for _, v := range values {
		want = AppendUint32(want, v)
	}

	dst := make([]byte, EncodedSizeUint32s(values))
	n, err := EncodeUint32s(dst, values)
	require.NoError(t, err)
	require.Equal(t, want, dst[:n])

	got := make([]uint32, len(values))
	nv, nb, err := DecodeUint32s(got, dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(values), nv)
	require.Equal(t, n, nb)
	require.Equal(t, values, got)

	t.Run("overflow stops", func(t *testing.T) {
		enc := AppendUint32(nil, 3)
		enc = AppendUint64(enc, math.MaxUint32+1)

		out := make([]uint32, 2)
		nv, nb, err := DecodeUint32s(out, enc)
		require.ErrorIs(t, err, errs.ErrOverflow)
		require.Equal(t, 1, nv)
		require.Equal(t, 1, nb)
	})

	t.Run("buffer too small", func(t *testing.T) {
		_, err := EncodeUint32s(make([]byte, EncodedSizeUint32s(values)-1), values)
		require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	})
}

func TestInt64sBulk(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	values := make([]int64, 500)
	for i := range values {
		values[i] = int64(rng.Uint64()) >> uint(rng.Intn(57))
	}
	values[0] = math.MinInt64
	values[1] = math.MaxInt64
	values[2] = 0

	var want []byte
	for _, v := range values {
		want = AppendInt64(want, v)
	}
	require.Equal(t, EncodedSizeInt64s(values), len(want))

	dst := make([]byte, len(want))
	n, err := EncodeInt64s(dst, values)
	require.NoError(t, err)
	require.Equal(t, want, dst[:n])

	got := make([]int64, len(values))
	nv, nb, err := DecodeInt64s(got, dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(values), nv)
	require.Equal(t, n, nb)
	require.Equal(t, values, got)

	t.Run("truncated", func(t *testing.T) {
		nv, nb, err := DecodeInt64s(make([]int64, len(values)), dst[:n-1])
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, len(values)-1, nv)
		require.Equal(t, EncodedSizeInt64s(values[:len(values)-1]), nb)
	})
}

func TestFloat64sBulk(t *testing.T) {
	rng := rand.New(rand.NewSource(66))
	values := make([]float64, 500)
	for i := range values {
		values[i] = math.Float64frombits(rng.Uint64())
	}
	values[0] = 0
	values[1] = math.Copysign(0, -1)
	values[2] = math.NaN()
	values[3] = math.Inf(1)
	values[4] = 1.0

	var want []byte
	for _, v := range values {
		want = AppendFloat64(want, v)
	}
	require.Equal(t, EncodedSizeFloat64s(values), len(want))

	dst := make([]byte, len(want))
	n, err := EncodeFloat64s(dst, values)
	require.NoError(t, err)
	require.Equal(t, want, dst[:n])

	got := make([]float64, len(values))
	nv, nb, err := DecodeFloat64s(got, dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(values), nv)
	require.Equal(t, n, nb)
	for i := range values {
		require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "index %d", i)
	}
}
