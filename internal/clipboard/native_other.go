//go:build !windows

package clipboard

import "runtime"

const autoBackend = BackendPortable

func newNativeSystem() System {
	return Unavailable{Reason: "no native clipboard backend on " + runtime.GOOS}
}
