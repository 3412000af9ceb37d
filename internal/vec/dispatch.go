package vec

import (
	"os"
	"strconv"
)

// Level reports which block width the package selected at init.
type Level uint8

const (
	LevelScalar Level = iota // LevelScalar disables the kernels entirely.
	Level128                 // Level128 runs 4-lane uint32 / 2-lane uint64 blocks.
	Level256                 // Level256 runs 8-lane uint32 / 4-lane uint64 blocks.
)

func (l Level) String() string {
	switch l {
	case Level128:
		return "simd128"
	case Level256:
		return "simd256"
	default:
		return "scalar"
	}
}

// NoSIMDEnv is the environment variable that forces LevelScalar when set to
// a true value per strconv.ParseBool. It is consulted once, at init.
const NoSIMDEnv = "VLEN_NO_SIMD"

var active Level

// Block kernels for the active level. They stay nil at LevelScalar, so
// callers check Active before calling.
var (
	EncodeU32Block func(dst []byte, src []uint32) (int, int)
	DecodeU32Block func(dst []uint32, src []byte) (int, int)
	EncodeU64Block func(dst []byte, src []uint64) (int, int)
	DecodeU64Block func(dst []uint64, src []byte) (int, int)
)

// Active returns the block level selected at init.
func Active() Level {
	return active
}

func noSIMD() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	disabled, err := strconv.ParseBool(val)

	return err == nil && disabled
}

func use(l Level) {
	active = l
	switch l {
	case Level256:
		EncodeU32Block = encodeU32x8
		DecodeU32Block = decodeU32x8
		EncodeU64Block = encodeU64x4
		DecodeU64Block = decodeU64x4
	case Level128:
		EncodeU32Block = encodeU32x4
		DecodeU32Block = decodeU32x4
		EncodeU64Block = encodeU64x2
		DecodeU64Block = decodeU64x2
	default:
		EncodeU32Block = nil
		DecodeU32Block = nil
		EncodeU64Block = nil
		DecodeU64Block = nil
	}
}
