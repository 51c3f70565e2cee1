//go:build countcalls

package dispatch

import "sync/atomic"

var barrierCalls atomic.Int64

// barrier counts its calls instead of being an empty assembly stub.
//
//go:noinline
func barrier() {
	barrierCalls.Add(1)
}

// BarrierCalls returns the number of no-op bodies executed since the
// last ResetBarrierCalls.
func BarrierCalls() int64 {
	return barrierCalls.Load()
}

// ResetBarrierCalls zeroes the call counter.
func ResetBarrierCalls() {
	barrierCalls.Store(0)
}
