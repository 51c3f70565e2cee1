package dispatch

import "unsafe"

// Sampler produces the next sample of a generator. The type-erasure
// trial ignores the value.
type Sampler interface {
	NextSample() float32
}

// Generator is the stateless Sampler used by the type-erasure trial.
type Generator struct{}

// NextSample implements Sampler.
//
//go:noinline
func (*Generator) NextSample() float32 {
	barrier()

	return 0
}

// Erased is a callable that carries an untyped object pointer and an
// adapter which restores the type before calling NextSample.
type Erased struct {
	obj  unsafe.Pointer
	call func(unsafe.Pointer) float32
}

// Erase wraps obj in an Erased. The adapter is instantiated for T, so no
// interface value is involved at the call site.
func Erase[T any, P interface {
	*T
	Sampler
}](obj P) Erased {
	return Erased{
		obj:  unsafe.Pointer(obj),
		call: adapt[T, P],
	}
}

func adapt[T any, P interface {
	*T
	Sampler
}](obj unsafe.Pointer) float32 {
	return P((*T)(obj)).NextSample()
}

// Call invokes the wrapped object's NextSample. Calling the zero Erased
// panics.
func (e Erased) Call() float32 {
	return e.call(e.obj)
}

// RunTypeErased calls e n times.
//
//go:noinline
func RunTypeErased(e Erased, n int64) {
	for i := int64(0); i < n; i++ {
		e.Call()
	}
}
