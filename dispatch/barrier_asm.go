//go:build (amd64 || arm64) && !countcalls

package dispatch

// barrier is implemented in assembly with an empty body. The compiler
// cannot see into it, so calls to it are never inlined or removed.
func barrier()
