//go:build arm64

package vec

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case noSIMD():
		use(LevelScalar)
	case cpu.ARM64.HasASIMD:
		use(Level128)
	default:
		use(LevelScalar)
	}
}
