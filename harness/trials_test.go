package harness

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/callbench/dispatch"
)

type countingWorker struct {
	calls int64
}

func (c *countingWorker) DoWork() { c.calls++ }

type countingGenerator struct {
	calls int64
}

func (c *countingGenerator) NextSample() float32 {
	c.calls++

	return 0
}

func TestTrialsCallUnitExactly(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Trial, func() int64)
	}{
		{
			name: TrialDynamic,
			build: func() (Trial, func() int64) {
				w := &countingWorker{}
				return DynamicTrial(w), func() int64 { return w.calls }
			},
		},
		{
			name: TrialFunctionPointer,
			build: func() (Trial, func() int64) {
				var calls int64
				return FunctionPointerTrial(func() { calls++ }),
					func() int64 { return calls }
			},
		},
		{
			name: TrialTypeErasure,
			build: func() (Trial, func() int64) {
				gen := &countingGenerator{}
				return TypeErasureTrial(dispatch.Erase(gen)),
					func() int64 { return gen.calls }
			},
		},
	}

	for _, tt := range tests {
		for _, n := range []int64{0, 5, 1000} {
			t.Run(fmt.Sprintf("%s/n=%d", tt.name, n), func(t *testing.T) {
				trial, calls := tt.build()
				assert.Equal(t, tt.name, trial.Name)

				results, err := NewRunner(discardLogger()).Run(
					context.Background(),
					[]Trial{trial},
					RunConfig{Iterations: n},
				)
				require.NoError(t, err)
				require.Len(t, results, 1)

				assert.Equal(t, n, calls())
				assert.Equal(t, n, results[0].Iterations)
			})
		}
	}
}
