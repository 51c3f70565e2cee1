package harness

import "github.com/weiihann/callbench/dispatch"

// Trial names, in the order AllTrials returns them.
const (
	TrialDynamic         = "dynamic"
	TrialFunctionPointer = "function-pointer"
	TrialStatic          = "static"
	TrialTypeErasure     = "type-erasure"
)

// DefaultTrials returns the dynamic, function-pointer and static trials,
// in that order, bound to the no-op units.
func DefaultTrials() []Trial {
	return []Trial{
		DynamicTrial(dispatch.ConcreteWorker{}),
		FunctionPointerTrial(dispatch.WorkFunction),
		StaticTrial(),
	}
}

// AllTrials returns DefaultTrials followed by the type-erasure trial.
func AllTrials() []Trial {
	return append(DefaultTrials(),
		TypeErasureTrial(dispatch.Erase(&dispatch.Generator{})),
	)
}

// DynamicTrial calls w through its interface.
func DynamicTrial(w dispatch.Worker) Trial {
	return Trial{
		Name:  TrialDynamic,
		Title: "Dynamic dispatch (interface method)",
		Run: func(n int64) {
			dispatch.RunDynamic(w, n)
		},
	}
}

// FunctionPointerTrial calls fn through a func value.
func FunctionPointerTrial(fn func()) Trial {
	return Trial{
		Name:  TrialFunctionPointer,
		Title: "Function pointer (func value)",
		Run: func(n int64) {
			dispatch.RunFunctionPointer(fn, n)
		},
	}
}

// StaticTrial calls Inner.Action through a generic driver. The closure
// literal must stay at the RunStatic call site; a func value built
// elsewhere reaches the driver as an indirect call.
func StaticTrial() Trial {
	return Trial{
		Name:  TrialStatic,
		Title: "Static dispatch (generics)",
		Run:   runStatic,
	}
}

func runStatic(n int64) {
	inner := &dispatch.Inner{}
	dispatch.RunStatic(func() { inner.Action() }, n)
}

// TypeErasureTrial calls e, an untyped pointer paired with a generic
// adapter.
func TypeErasureTrial(e dispatch.Erased) Trial {
	return Trial{
		Name:  TrialTypeErasure,
		Title: "Type erasure (unsafe.Pointer + adapter)",
		Run: func(n int64) {
			dispatch.RunTypeErased(e, n)
		},
	}
}
