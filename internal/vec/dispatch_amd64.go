//go:build amd64

package vec

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case noSIMD():
		use(LevelScalar)
	case cpu.X86.HasAVX2:
		use(Level256)
	default:
		// SSE2 is part of the amd64 baseline.
		use(Level128)
	}
}
