//go:build !amd64 && !arm64 && !countcalls

package dispatch

//go:noinline
func barrier() {}
