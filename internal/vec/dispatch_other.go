//go:build !amd64 && !arm64

package vec

func init() {
	use(LevelScalar)
}
