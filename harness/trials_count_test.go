//go:build countcalls

package harness

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/callbench/dispatch"
)

// Run with -tags countcalls: the no-op bodies count their calls, so the
// production trials are checked with their real units.
func TestProductionTrialsCallExactly(t *testing.T) {
	for _, trial := range AllTrials() {
		for _, n := range []int64{0, 5, 1000} {
			t.Run(fmt.Sprintf("%s/n=%d", trial.Name, n), func(t *testing.T) {
				dispatch.ResetBarrierCalls()

				_, err := NewRunner(discardLogger()).Run(
					context.Background(),
					[]Trial{trial},
					RunConfig{Iterations: n},
				)
				require.NoError(t, err)

				assert.Equal(t, n, dispatch.BarrierCalls())
			})
		}
	}
}
