package dispatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	calls int64
}

func (c *countingWorker) DoWork() { c.calls++ }

type countingInner struct {
	calls int64
}

func (c *countingInner) Action() { c.calls++ }

type countingGenerator struct {
	calls int64
}

func (c *countingGenerator) NextSample() float32 {
	c.calls++

	return float32(c.calls)
}

func TestDriversCallExactly(t *testing.T) {
	for _, n := range []int64{0, 1, 5, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			testDriversCallExactly(t, n)
		})
	}
}

func testDriversCallExactly(t *testing.T, n int64) {
	t.Run("dynamic", func(t *testing.T) {
		w := &countingWorker{}
		RunDynamic(w, n)
		assert.Equal(t, n, w.calls)
	})

	t.Run("function-pointer", func(t *testing.T) {
		var calls int64
		RunFunctionPointer(func() { calls++ }, n)
		assert.Equal(t, n, calls)
	})

	t.Run("static", func(t *testing.T) {
		inner := &countingInner{}
		RunStatic(func() { inner.Action() }, n)
		assert.Equal(t, n, inner.calls)
	})

	t.Run("type-erasure", func(t *testing.T) {
		gen := &countingGenerator{}
		RunTypeErased(Erase(gen), n)
		assert.Equal(t, n, gen.calls)
	})
}

func TestDriversNegativeCount(t *testing.T) {
	w := &countingWorker{}
	RunDynamic(w, -3)
	assert.Zero(t, w.calls)

	var calls int
	RunFunctionPointer(func() { calls++ }, -1)
	RunStatic(func() { calls++ }, -1)
	assert.Zero(t, calls)
}

func TestRunStaticNamedFuncType(t *testing.T) {
	type work func()

	var calls int
	RunStatic(work(func() { calls++ }), 7)
	assert.Equal(t, 7, calls)
}

func TestErasedForwardsToObject(t *testing.T) {
	gen := &countingGenerator{}
	e := Erase(gen)

	assert.Equal(t, float32(1), e.Call())
	assert.Equal(t, float32(2), e.Call())
	assert.Equal(t, int64(2), gen.calls)
}

func TestNoopUnits(t *testing.T) {
	// The real units have no observable effect; they must simply return.
	var w Worker = ConcreteWorker{}
	RunDynamic(w, 10)
	RunFunctionPointer(WorkFunction, 10)
	inner := &Inner{}
	RunStatic(func() { inner.Action() }, 10)
	RunTypeErased(Erase(&Generator{}), 10)
}
