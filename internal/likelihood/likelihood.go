package likelihood

import (
	"log"

	"gounfold/domain/core"
)

// Status tracks the two-state lifecycle shared by all objective variants.
type Status int

const (
	// StatusUninitialized is the state before Initialize has run.
	StatusUninitialized Status = -1
	// StatusInitialized permits evaluation.
	StatusInitialized Status = 0
)

// base carries the lifecycle state and the two derivative capability flags
// every objective shares. Evaluations must not run before Initialize, and
// derivative calls must not run unless the concrete objective switched the
// matching capability on.
type base struct {
	name            string
	status          Status
	gradientDefined bool
	hesseDefined    bool
}

func newBase(name string) base {
	return base{name: name, status: StatusUninitialized}
}

func (b *base) markInitialized() {
	b.status = StatusInitialized
	log.Printf("[%s] initialized", b.name)
}

// Status returns the current lifecycle state.
func (b *base) Status() Status { return b.status }

// GradientDefined reports whether the analytic gradient is available.
func (b *base) GradientDefined() bool { return b.gradientDefined }

// HesseMatrixDefined reports whether the analytic Hessian is available.
func (b *base) HesseMatrixDefined() bool { return b.hesseDefined }

// The lifecycle check runs before the capability check so that an
// uninitialized objective always reports the lifecycle violation.

func (b *base) checkEvaluate() error {
	if b.status < StatusInitialized {
		return core.NewLifecycleError("Evaluate")
	}
	return nil
}

func (b *base) checkGradient() error {
	if b.status < StatusInitialized {
		return core.NewLifecycleError("EvaluateGradient")
	}
	if !b.gradientDefined {
		return core.ErrGradientUndefined
	}
	return nil
}

func (b *base) checkHesse() error {
	if b.status < StatusInitialized {
		return core.NewLifecycleError("EvaluateHesseMatrix")
	}
	if !b.hesseDefined {
		return core.ErrHesseUndefined
	}
	return nil
}
