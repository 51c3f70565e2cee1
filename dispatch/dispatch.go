// Package dispatch provides no-op units of work and loop drivers that
// invoke them through different call mechanisms: interface method
// dispatch, func values, generic instantiation and a hand-built
// type-erased callable.
//
// Every no-op body calls an opaque barrier so the compiler cannot remove
// the call or the loop around it.
package dispatch

// Worker is the capability called through dynamic dispatch.
type Worker interface {
	DoWork()
}

// ConcreteWorker is the stateless Worker used by the dynamic trial.
type ConcreteWorker struct{}

// DoWork implements Worker.
//
//go:noinline
func (ConcreteWorker) DoWork() {
	barrier()
}

// WorkFunction is the bare function used by the function-pointer trial.
//
//go:noinline
func WorkFunction() {
	barrier()
}

// Inner is the stateless helper captured by the static trial's closure.
type Inner struct{}

// Action does nothing observable.
//
//go:noinline
func (*Inner) Action() {
	barrier()
}

// RunDynamic calls w.DoWork n times. It is kept out of line so the
// caller's concrete type cannot be used to devirtualize the call.
//
//go:noinline
func RunDynamic(w Worker, n int64) {
	for i := int64(0); i < n; i++ {
		w.DoWork()
	}
}

// RunFunctionPointer calls fn n times.
//
//go:noinline
func RunFunctionPointer(fn func(), n int64) {
	for i := int64(0); i < n; i++ {
		fn()
	}
}

// RunStatic calls f n times. Instantiations are shared per GC shape, so
// every func type runs the same out-of-line body through an indirect
// call. The call is only resolved statically when RunStatic is inlined
// at a site where f is a closure literal.
func RunStatic[F ~func()](f F, n int64) {
	for i := int64(0); i < n; i++ {
		f()
	}
}
